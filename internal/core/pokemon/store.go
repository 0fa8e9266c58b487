// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pokemon

import "context"

// Repository defines persistence for catalog entries.
//
// Create and Update take the card image URL so the entry and its first image
// are written in one transaction.
type Repository interface {
	List(ctx context.Context) ([]*Pokemon, error)
	FindByID(ctx context.Context, id int64) (*Pokemon, error)
	Create(ctx context.Context, pokemon *Pokemon, imageURL string) error
	Update(ctx context.Context, pokemon *Pokemon, imageURL string) error
	Delete(ctx context.Context, id int64) error
}
