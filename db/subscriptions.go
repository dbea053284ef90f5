package db

import (
	"time"
)

// Subscribe records that a user wants approval notifications. Subscribing
// twice is a no-op.
func Subscribe(userID string) error {
	_, err := DB.Exec(`INSERT INTO subscriptions(user_id, created_at) VALUES(?, ?)
		ON CONFLICT(user_id) DO NOTHING`, userID, time.Now().Unix())
	return err
}

// Unsubscribe removes a user's subscription.
func Unsubscribe(userID string) error {
	_, err := DB.Exec("DELETE FROM subscriptions WHERE user_id = ?", userID)
	return err
}

// IsSubscribed reports whether a user currently has a subscription.
func IsSubscribed(userID string) (bool, error) {
	var n int
	err := DB.QueryRow("SELECT COUNT(*) FROM subscriptions WHERE user_id = ?", userID).Scan(&n)
	return n > 0, err
}

// ListSubscribers returns the user IDs of every subscriber.
func ListSubscribers() ([]string, error) {
	rows, err := DB.Query("SELECT user_id FROM subscriptions ORDER BY created_at ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var userIDs []string
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, err
		}
		userIDs = append(userIDs, userID)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return userIDs, nil
}
