package app

import (
	"context"
	"fmt"

	"github.com/metinatakli/cinema-tickets/internal/domain"
	"github.com/redis/go-redis/v9"
)

var releasePurchaseLockScript = redis.NewScript(`
    -- KEYS[1] = purchase lock key (e.g., purchase_lock:42)
    -- ARGV[1] = token of the request holding the lock

    if redis.call("GET", KEYS[1]) == ARGV[1] then
        return redis.call("DEL", KEYS[1])
    end

    return 0
`)

func purchaseLockKey(accountID int) string {
	return fmt.Sprintf("purchase_lock:%d", accountID)
}

// acquirePurchaseLock allows a single purchase in flight per account. The returned
// func releases the lock only if it is still owned by this request.
func (app *Application) acquirePurchaseLock(ctx context.Context, accountID int) (func(), error) {
	key := purchaseLockKey(accountID)
	token := app.newLockToken()

	acquired, err := app.redis.SetNX(ctx, key, token, app.config.PurchaseLockTTL).Result()
	if err != nil {
		return nil, fmt.Errorf("purchase lock couldn't be acquired: %w", err)
	}

	if !acquired {
		app.logger.Warn("purchase rejected: account already has a purchase in flight", "account_id", accountID)
		return nil, domain.ErrPurchaseInProgress
	}

	release := func() {
		err := releasePurchaseLockScript.Run(context.WithoutCancel(ctx), app.redis, []string{key}, token).Err()
		if err != nil {
			app.logger.Error("failed to release purchase lock", "account_id", accountID, "error", err)
		}
	}

	return release, nil
}
