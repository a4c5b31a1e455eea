package userrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/domain"
	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/pg"
)

const userColumns = `id, referrer_id, referral_code, first_name, telegram_id, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanUser(row pgx.Row) (domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.ReferrerID, &user.ReferralCode, &user.FirstName, &user.TelegramID, &user.CreatedAt)
	return user, err
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(repo.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Int("userID", id), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByReferrerID(ctx context.Context, referrerID int) ([]domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE referrer_id = $1
		ORDER BY id
	`
	return repo.list(ctx, query, referrerID)
}

// FindByReferrerIDs loads one whole depth of a downline in a single query.
func (repo *Repository) FindByReferrerIDs(ctx context.Context, referrerIDs []int) ([]domain.User, error) {
	if len(referrerIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE referrer_id = ANY($1)
		ORDER BY id
	`
	return repo.list(ctx, query, referrerIDs)
}

func (repo *Repository) CountDirectReferrals(ctx context.Context, userID int) (int, error) {
	var count int
	err := repo.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE referrer_id = $1`, userID).Scan(&count)
	if err != nil {
		zap.L().Error("can't count direct referrals", zap.Int("userID", userID), zap.Error(err))
		return 0, err
	}
	return count, nil
}

// ListIDs pages through user ids in ascending order, starting after afterID.
func (repo *Repository) ListIDs(ctx context.Context, afterID, limit int) ([]int, error) {
	query := `
		SELECT id
		FROM users
		WHERE id > $1
		ORDER BY id
		LIMIT $2
	`
	rows, err := repo.db.Query(ctx, query, afterID, limit)
	if err != nil {
		zap.L().Error("can't list user ids", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan user id", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate user ids", zap.Error(err))
		return nil, err
	}
	return ids, nil
}

func (repo *Repository) list(ctx context.Context, query string, args ...any) ([]domain.User, error) {
	rows, err := repo.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate user rows", zap.Error(err))
		return nil, err
	}
	return users, nil
}
