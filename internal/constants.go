/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import "time"

const (
	UserAgent     = "doublesleague/0.3.0 (+https://github.com/mikeb26/doublesleague)"
	LeagueBucket  = "bopmatic-doublesleague-prod"
	WebCacheTTL   = 24 * time.Hour
	StoreEnvVar   = "DOUBLESLEAGUE_STORE"
	DefaultStore  = "dir:.doublesleague"
	DateLayoutISO = "2006-01-02"
)
