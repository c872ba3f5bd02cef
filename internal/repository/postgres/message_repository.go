package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gomatri/matrimony-backend/internal/domain"
	"github.com/gomatri/matrimony-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *domain.Message) error {
	query := `
		INSERT INTO messages (sender_id, receiver_id, content, sent_at, seen)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.db.QueryRowContext(
		ctx, query,
		message.SenderID, message.ReceiverID, message.Content, message.SentAt, message.Seen,
	).Scan(&message.ID)
}

func (r *messageRepository) GetByID(ctx context.Context, id int) (*domain.Message, error) {
	var message domain.Message
	query := `SELECT * FROM messages WHERE id = $1`
	err := r.db.GetContext(ctx, &message, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMessageNotFound
		}
		return nil, err
	}
	return &message, nil
}

func (r *messageRepository) GetAll(ctx context.Context) ([]*domain.Message, error) {
	var messages []*domain.Message
	query := `SELECT * FROM messages ORDER BY sent_at DESC`
	err := r.db.SelectContext(ctx, &messages, query)
	return messages, err
}

func (r *messageRepository) GetBySender(ctx context.Context, userID int) ([]*domain.Message, error) {
	var messages []*domain.Message
	query := `SELECT * FROM messages WHERE sender_id = $1 ORDER BY sent_at DESC`
	err := r.db.SelectContext(ctx, &messages, query, userID)
	return messages, err
}

func (r *messageRepository) GetByReceiver(ctx context.Context, userID int) ([]*domain.Message, error) {
	var messages []*domain.Message
	query := `SELECT * FROM messages WHERE receiver_id = $1 ORDER BY sent_at DESC`
	err := r.db.SelectContext(ctx, &messages, query, userID)
	return messages, err
}

func (r *messageRepository) Update(ctx context.Context, message *domain.Message) error {
	query := `
		UPDATE messages
		SET content = $1, seen = $2
		WHERE id = $3
	`
	result, err := r.db.ExecContext(ctx, query, message.Content, message.Seen, message.ID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrMessageNotFound
	}
	return nil
}

func (r *messageRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM messages WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrMessageNotFound
	}
	return nil
}
