package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/aussiebroadwan/tracker/internal/tracker/domain"
	"github.com/aussiebroadwan/tracker/internal/tracker/store"
	"github.com/aussiebroadwan/tracker/pkg/idx"
)

var (
	ErrUnknownColumn      = errors.New("unknown_column")
	ErrPermissionNotFound = errors.New("permission_not_found")
)

// PermissionService decides who besides the admin may edit each KPI column.
type PermissionService struct {
	Store  store.Store
	Policy *ApprovalPolicy
	Now    Clock
}

// Set creates or replaces the permission of column. Admin only.
func (s *PermissionService) Set(ctx context.Context, actor domain.Actor, column domain.Column, displayName string, users []string) (domain.ColumnPermission, error) {
	if err := authorizeAdmin(ctx, s.Store, s.Policy, actor); err != nil {
		return domain.ColumnPermission{}, err
	}
	if !column.Valid() {
		return domain.ColumnPermission{}, ErrUnknownColumn
	}

	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		displayName = column.DisplayName()
	}

	assigned := make([]string, 0, len(users))
	for _, u := range users {
		u = normalizeEmail(u)
		if u == "" || slices.Contains(assigned, u) {
			continue
		}
		if !strings.Contains(u, "@") {
			return domain.ColumnPermission{}, fmt.Errorf("%w: %q is not an email address", ErrValidation, u)
		}
		assigned = append(assigned, u)
	}

	now := s.Now.now()
	p := domain.ColumnPermission{
		ID:                idx.New().String(),
		ColumnName:        column,
		ColumnDisplayName: displayName,
		AssignedUsers:     assigned,
		CreatedBy:         normalizeEmail(actor.Email),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.Store.Permissions().UpsertPermission(ctx, p); err != nil {
		return domain.ColumnPermission{}, err
	}
	return s.Get(ctx, column)
}

func (s *PermissionService) Get(ctx context.Context, column domain.Column) (domain.ColumnPermission, error) {
	p, err := s.Store.Permissions().GetPermission(ctx, column)
	if errors.Is(err, store.ErrNotFound) {
		return domain.ColumnPermission{}, ErrPermissionNotFound
	}
	return p, err
}

func (s *PermissionService) List(ctx context.Context) ([]domain.ColumnPermission, error) {
	return s.Store.Permissions().ListPermissions(ctx)
}

// Delete removes the permission of column. Admin only.
func (s *PermissionService) Delete(ctx context.Context, actor domain.Actor, column domain.Column) error {
	if err := authorizeAdmin(ctx, s.Store, s.Policy, actor); err != nil {
		return err
	}
	err := s.Store.Permissions().DeletePermission(ctx, column)
	if errors.Is(err, store.ErrNotFound) {
		return ErrPermissionNotFound
	}
	return err
}

// CanEdit reports whether email may edit column. The admin always can;
// without a permission row nobody else can.
func (s *PermissionService) CanEdit(ctx context.Context, email string, column domain.Column, isAdmin bool) (bool, error) {
	if isAdmin {
		return true, nil
	}
	p, err := s.Store.Permissions().GetPermission(ctx, column)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return p.Allows(email), nil
}

// EditableColumns lists the columns email may edit, in table order.
func (s *PermissionService) EditableColumns(ctx context.Context, email string, isAdmin bool) ([]domain.Column, error) {
	if isAdmin {
		return slices.Clone(domain.EditableColumns), nil
	}
	perms, err := s.Store.Permissions().ListPermissions(ctx)
	if err != nil {
		return nil, err
	}
	allowed := make(map[domain.Column]bool, len(perms))
	for _, p := range perms {
		allowed[p.ColumnName] = p.Allows(email)
	}
	out := []domain.Column{}
	for _, c := range domain.EditableColumns {
		if allowed[c] {
			out = append(out, c)
		}
	}
	return out, nil
}
