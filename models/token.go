// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps the bearer token issued by the EMR backend on login.
//
// SignedString holds the compact serialized form (header.payload.signature)
// ready to be attached to Authorization headers. OperatorID is a cached copy
// of the "sub" claim parsed to int64; it identifies the logged-in operator
// on whose behalf clinic data is pulled.
type Token struct {
	jwt.RegisteredClaims

	SignedString string `json:"-"`
	OperatorID   int64  `json:"-"`
}

// GetOperatorID extracts the operator identifier from the token's "sub"
// claim and parses it as a base-10 int64.
func (t *Token) GetOperatorID() (int64, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting operator ID from token: %w", err)
	}

	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting operator ID from token to int64: %w", err)
	}

	return id, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
