package battery

import (
	"context"
	"errors"
	"fmt"

	"github.com/FerdynandHub/MyAssetTracker-sub000/pkg/models"
)

var (
	ErrUnknownType     = errors.New("unknown battery type")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrNotEnoughStock  = errors.New("not enough batteries in stock")
)

// LedgerClient is the slice of the register API the battery ledger needs.
type LedgerClient interface {
	GetBatteryInventory(ctx context.Context) (models.BatteryInventory, error)
	CheckoutBattery(ctx context.Context, batteryType string, quantity int, person string) error
	GetBatteryHistory(ctx context.Context, limit int) ([]models.BatteryEvent, error)
}

type Service struct {
	client LedgerClient
}

func NewService(client LedgerClient) *Service {
	return &Service{client: client}
}

func (s *Service) Inventory(ctx context.Context) (models.BatteryInventory, error) {
	return s.client.GetBatteryInventory(ctx)
}

// Checkout validates the request against current stock before touching the
// ledger, so an over-draw never reaches the register.
func (s *Service) Checkout(ctx context.Context, batteryType string, quantity int, person string) (models.BatteryInventory, error) {
	if quantity < 1 {
		return models.BatteryInventory{}, ErrInvalidQuantity
	}

	inventory, err := s.client.GetBatteryInventory(ctx)
	if err != nil {
		return models.BatteryInventory{}, fmt.Errorf("check stock before checkout: %w", err)
	}

	stock, known := inventory.Stock(batteryType)
	if !known {
		return models.BatteryInventory{}, ErrUnknownType
	}
	if quantity > stock {
		return models.BatteryInventory{}, fmt.Errorf("%w: requested %d, have %d", ErrNotEnoughStock, quantity, stock)
	}

	if err := s.client.CheckoutBattery(ctx, batteryType, quantity, person); err != nil {
		return models.BatteryInventory{}, err
	}

	switch batteryType {
	case models.BatteryTypeAA:
		inventory.AA -= quantity
	case models.BatteryType9V:
		inventory.NineV -= quantity
	}
	return inventory, nil
}

func (s *Service) History(ctx context.Context, limit int) ([]models.BatteryEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.client.GetBatteryHistory(ctx, limit)
}
