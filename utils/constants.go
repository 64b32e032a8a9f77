// File: utils/constants.go
package utils

import "time"

// NotifiedKeyPrefix is the prefix used for Redis notification dedupe keys.
const NotifiedKeyPrefix = "notified:"

// NotifiedTTL is the time-to-live for notification dedupe markers. A paid
// order older than this will never be re-confirmed by a live client.
const NotifiedTTL = 30 * 24 * time.Hour
