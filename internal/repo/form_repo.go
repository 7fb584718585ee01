// Package repo – store functions for forms, form submissions, and public
// form responses.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/opsdesk/opsdesk-backend/internal/domain"
)

// ListForms returns the form reference data for a workspace.
func ListForms(ctx context.Context, db *gorm.DB, workspaceID int) ([]domain.Form, error) {
	var out []domain.Form
	err := db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Order("id ASC").
		Find(&out).Error
	return out, err
}

// ListFormSubmissions returns all form submissions in insertion order.
func ListFormSubmissions(ctx context.Context, db *gorm.DB) ([]domain.FormSubmission, error) {
	var out []domain.FormSubmission
	err := db.WithContext(ctx).Order("id ASC").Find(&out).Error
	return out, err
}

// InsertFormSubmission appends a submission. A missing status defaults to
// pending and a missing form reference defaults to the intake form.
func InsertFormSubmission(db *gorm.DB, s *domain.FormSubmission) error {
	if s.Status == "" {
		s.Status = domain.SubmissionPending
	}
	if s.FormID == 0 {
		s.FormID = IntakeFormID
	}
	return db.Create(s).Error
}

// ListFormResponses returns recorded public form responses in insertion order.
func ListFormResponses(ctx context.Context, db *gorm.DB) ([]domain.FormResponse, error) {
	var out []domain.FormResponse
	err := db.WithContext(ctx).Order("id ASC").Find(&out).Error
	return out, err
}

// InsertFormResponse appends a public form response.
func InsertFormResponse(db *gorm.DB, r *domain.FormResponse) error {
	return db.Create(r).Error
}
