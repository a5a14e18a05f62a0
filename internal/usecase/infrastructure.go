package usecase

import "context"

type OrderPublisher interface {
	PublishOrderPlaced(ctx context.Context, req *OrderPlacedReq) error
}
