// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	createUser = `INSERT INTO users (first_name, last_name, email, password_hash)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, first_name, last_name, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, first_name, last_name, email, password_hash, created_at
    FROM users
    WHERE email = $1;`
)
