package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/strivehr/perform-backend-go/internal/domain/leave"
	"github.com/strivehr/perform-backend-go/internal/pkg/database"
)

type leaveDocumentRepositoryImpl struct {
	db *database.DB
}

func NewLeaveDocumentRepository(db *database.DB) leave.DocumentRepository {
	return &leaveDocumentRepositoryImpl{db: db}
}

func (r *leaveDocumentRepositoryImpl) Create(ctx context.Context, d leave.RequestDocument) (leave.RequestDocument, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO leave_request_documents (id, request_id, type, file_path, generated_by, generated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW())
		RETURNING id, generated_at
	`
	err := q.QueryRow(ctx, query, d.RequestID, d.Type, d.FilePath, d.GeneratedBy).
		Scan(&d.ID, &d.GeneratedAt)
	if err != nil {
		return leave.RequestDocument{}, fmt.Errorf("create leave request document: %w", err)
	}
	return d, nil
}

func (r *leaveDocumentRepositoryImpl) GetByRequestID(ctx context.Context, requestID string) (leave.RequestDocument, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, request_id, type, file_path, generated_by, generated_at
		FROM leave_request_documents
		WHERE request_id = $1
		ORDER BY generated_at DESC
		LIMIT 1
	`
	var d leave.RequestDocument
	err := q.QueryRow(ctx, query, requestID).
		Scan(&d.ID, &d.RequestID, &d.Type, &d.FilePath, &d.GeneratedBy, &d.GeneratedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.RequestDocument{}, leave.ErrDocumentNotFound
		}
		return leave.RequestDocument{}, err
	}
	return d, nil
}
