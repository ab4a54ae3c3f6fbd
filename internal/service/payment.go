package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kis-szolgyemi/simplepay-gateway/internal/dto"
	"github.com/kis-szolgyemi/simplepay-gateway/internal/model"
	"github.com/kis-szolgyemi/simplepay-gateway/internal/payload"
	"github.com/kis-szolgyemi/simplepay-gateway/internal/refcodec"
)

type PaymentService interface {
	BuildPayload(ctx context.Context, req *dto.BuildPayloadRequest) (*dto.BuildPayloadResponse, error)
	ResolveReference(ctx context.Context, ref string) (uint64, error)
}

type paymentServiceImpl struct {
	builder *payload.Builder
	refs    refcodec.Codec
}

func NewPaymentService(builder *payload.Builder, refs refcodec.Codec) PaymentService {
	return &paymentServiceImpl{
		builder: builder,
		refs:    refs,
	}
}

func (s *paymentServiceImpl) BuildPayload(_ context.Context, req *dto.BuildPayloadRequest) (*dto.BuildPayloadResponse, error) {
	order, err := orderFromRequest(req)
	if err != nil {
		return nil, err
	}

	body, err := s.builder.Encode(order)
	if err != nil {
		return nil, fmt.Errorf("build payment payload: %w", err)
	}

	return &dto.BuildPayloadResponse{
		OrderRef: s.refs.Encode(req.OrderID),
		Payload:  body,
	}, nil
}

func (s *paymentServiceImpl) ResolveReference(_ context.Context, ref string) (uint64, error) {
	id, err := s.refs.Decode(ref)
	if err != nil {
		return 0, fmt.Errorf("resolve order reference: %w", err)
	}

	return id, nil
}

// orderFromRequest adapts the inbound JSON order into the read model
// the payload builder consumes.
func orderFromRequest(req *dto.BuildPayloadRequest) (*model.Order, error) {
	items := make([]model.Item, len(req.Items))
	for i, item := range req.Items {
		converted := model.Item{
			Kind:     model.ItemKind(item.Kind),
			Quantity: item.Quantity,
			Total:    decimal.NewFromFloat(item.Total),
			Tax:      decimal.NewFromFloat(item.Tax),
		}

		switch converted.Kind {
		case model.KindLineItem:
			if item.Product == nil {
				return nil, fmt.Errorf("item %d: %w", i, payload.ErrMissingProduct)
			}
			converted.Product = &model.Product{
				ID:          item.Product.ID,
				SKU:         item.Product.SKU,
				Name:        item.Product.Name,
				Description: item.Product.Description,
			}
		case model.KindFee:
			converted.FeeID = item.FeeID
			converted.FeeName = item.FeeName
		default:
			return nil, fmt.Errorf("item %d: %w: %q", i, payload.ErrUnknownItemKind, item.Kind)
		}

		items[i] = converted
	}

	return model.NewOrder(model.OrderData{
		ID:            req.OrderID,
		Currency:      req.Currency,
		Total:         decimal.NewFromFloat(req.Total),
		ShippingTotal: decimal.NewFromFloat(req.ShippingTotal),
		ShippingTax:   decimal.NewFromFloat(req.ShippingTax),
		Billing:       addressFromDTO(req.Billing),
		Shipping:      addressFromDTO(req.Shipping),
		NeedsShipping: req.NeedsShipping,
		Items:         items,
	}), nil
}

func addressFromDTO(a dto.Address) model.Address {
	return model.Address{
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Company:   a.Company,
		Address1:  a.Address1,
		Address2:  a.Address2,
		City:      a.City,
		State:     a.State,
		Postcode:  a.Postcode,
		Country:   a.Country,
		Email:     a.Email,
		Phone:     a.Phone,
	}
}
