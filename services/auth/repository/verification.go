package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/parsab/daryaban/internal/pkg/constants"
	"github.com/parsab/daryaban/internal/pkg/models"
	"github.com/parsab/daryaban/services/auth"
)

// maxTxRetries bounds optimistic-lock retries when two verification attempts
// race on the same record.
const maxTxRetries = 5

func verificationKey(purpose models.Purpose, mobile string) string {
	return fmt.Sprintf(constants.KeyVerification, purpose, mobile)
}

// UpsertVerification stores a fresh challenge for (mobile, purpose). The SET
// overwrites any prior record for the pair, which is what enforces the
// at-most-one-active-challenge invariant.
func (r *AuthRepo) UpsertVerification(ctx context.Context, v *models.Verification, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal verification: %w", err)
	}

	key := verificationKey(v.Purpose, v.Mobile)
	if err := r.redisClient.Set(ctx, key, data, ttl); err != nil {
		return fmt.Errorf("failed to store verification in Redis: %w", err)
	}
	return nil
}

// GetVerification returns the record for (mobile, purpose) regardless of its
// consumed state, or nil when no record exists.
func (r *AuthRepo) GetVerification(ctx context.Context, mobile string, purpose models.Purpose) (*models.Verification, error) {
	val, err := r.redisClient.Get(ctx, verificationKey(purpose, mobile))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get verification: %w", err)
	}

	var v models.Verification
	if err := json.Unmarshal([]byte(val), &v); err != nil {
		return nil, fmt.Errorf("failed to unmarshal verification: %w", err)
	}
	return &v, nil
}

// FindActiveVerification returns the active record for the mobile. An empty
// purpose walks every known purpose, which deliberately lets clients that do
// not track purpose verify whichever challenge is outstanding.
func (r *AuthRepo) FindActiveVerification(ctx context.Context, mobile string, purpose models.Purpose) (*models.Verification, error) {
	purposes := models.Purposes
	if purpose != "" {
		purposes = []models.Purpose{purpose}
	}

	for _, p := range purposes {
		v, err := r.GetVerification(ctx, mobile, p)
		if err != nil {
			return nil, err
		}
		if v != nil && v.Active() {
			return v, nil
		}
	}
	return nil, nil
}

// FindConsumedVerification returns a consumed record still inside its grace
// window. Consumed records carry the grace TTL, so existence implies recency.
func (r *AuthRepo) FindConsumedVerification(ctx context.Context, mobile string, purpose models.Purpose) (*models.Verification, error) {
	purposes := models.Purposes
	if purpose != "" {
		purposes = []models.Purpose{purpose}
	}

	for _, p := range purposes {
		v, err := r.GetVerification(ctx, mobile, p)
		if err != nil {
			return nil, err
		}
		if v != nil && v.Consumed {
			return v, nil
		}
	}
	return nil, nil
}

// ApplyAttempt executes one verification attempt as a single optimistic
// transaction keyed on the record. The re-read, compare, and write all happen
// under WATCH, so concurrent attempts cannot lose an increment or both slip
// past the attempt limit.
func (r *AuthRepo) ApplyAttempt(ctx context.Context, v *models.Verification, code string, maxAttempts int, grace time.Duration) (auth.AttemptOutcome, *models.Verification, error) {
	key := verificationKey(v.Purpose, v.Mobile)

	var outcome auth.AttemptOutcome
	var updated *models.Verification

	txf := func(tx *redis.Tx) error {
		val, err := tx.Get(ctx, key).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				outcome = auth.AttemptNotFound
				return nil
			}
			return err
		}

		var current models.Verification
		if err := json.Unmarshal([]byte(val), &current); err != nil {
			return fmt.Errorf("failed to unmarshal verification: %w", err)
		}

		if !current.Active() {
			outcome = auth.AttemptNotFound
			return nil
		}

		// A record that somehow already sits at the limit is discarded
		// before the code is even compared.
		if current.Attempts >= maxAttempts {
			outcome = auth.AttemptExhausted
			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Del(ctx, key)
				return nil
			})
			return err
		}

		if current.Code != code {
			current.Attempts++
			if current.Attempts >= maxAttempts {
				// Exhausting attempt: active cleanup instead of waiting
				// for the TTL sweep.
				outcome = auth.AttemptExhausted
				updated = &current
				_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
					pipe.Del(ctx, key)
					return nil
				})
				return err
			}

			outcome = auth.AttemptMismatched
			updated = &current
			data, err := json.Marshal(&current)
			if err != nil {
				return fmt.Errorf("failed to marshal verification: %w", err)
			}
			remaining := time.Until(current.ExpiresAt)
			if remaining <= 0 {
				outcome = auth.AttemptNotFound
				updated = nil
				return nil
			}
			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Set(ctx, key, data, remaining)
				return nil
			})
			return err
		}

		// Match: mark consumed and keep the record around for the grace
		// window so verify-and-register retries can still see it.
		current.Consumed = true
		outcome = auth.AttemptMatched
		updated = &current
		data, err := json.Marshal(&current)
		if err != nil {
			return fmt.Errorf("failed to marshal verification: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, grace)
			return nil
		})
		return err
	}

	for i := 0; i < maxTxRetries; i++ {
		err := r.redisClient.Client.Watch(ctx, txf, key)
		if err == nil {
			return outcome, updated, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return auth.AttemptNotFound, nil, fmt.Errorf("failed to apply verification attempt: %w", err)
	}
	return auth.AttemptNotFound, nil, fmt.Errorf("failed to apply verification attempt: too many conflicts")
}

// DeleteVerification removes the record for (mobile, purpose)
func (r *AuthRepo) DeleteVerification(ctx context.Context, mobile string, purpose models.Purpose) error {
	if err := r.redisClient.Delete(ctx, verificationKey(purpose, mobile)); err != nil {
		return fmt.Errorf("failed to delete verification: %w", err)
	}
	return nil
}

// CountActive returns how many purposes hold an active record for the mobile
func (r *AuthRepo) CountActive(ctx context.Context, mobile string) (int, error) {
	count := 0
	for _, p := range models.Purposes {
		v, err := r.GetVerification(ctx, mobile, p)
		if err != nil {
			return 0, err
		}
		if v != nil && v.Active() {
			count++
		}
	}
	return count, nil
}

func stepTokenKey(nationalCode string) string {
	return fmt.Sprintf(constants.KeyChangeMobileStep, nationalCode)
}

// SaveStepToken stores the change-mobile step token for a national code
func (r *AuthRepo) SaveStepToken(ctx context.Context, nationalCode, token string, ttl time.Duration) error {
	if err := r.redisClient.Set(ctx, stepTokenKey(nationalCode), token, ttl); err != nil {
		return fmt.Errorf("failed to store step token: %w", err)
	}
	return nil
}

// GetStepToken returns the stored step token, or empty when absent
func (r *AuthRepo) GetStepToken(ctx context.Context, nationalCode string) (string, error) {
	val, err := r.redisClient.Get(ctx, stepTokenKey(nationalCode))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get step token: %w", err)
	}
	return val, nil
}

// DeleteStepToken removes the step token for a national code
func (r *AuthRepo) DeleteStepToken(ctx context.Context, nationalCode string) error {
	if err := r.redisClient.Delete(ctx, stepTokenKey(nationalCode)); err != nil {
		return fmt.Errorf("failed to delete step token: %w", err)
	}
	return nil
}
