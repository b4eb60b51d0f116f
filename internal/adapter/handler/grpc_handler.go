package handler

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/rl1809/food-order/internal/core/domain"
	"github.com/rl1809/food-order/internal/core/service"
)

const FoodOrderServiceName = "foodorder.FoodOrderService"

type Empty struct{}

type ListFoodResponse struct {
	Items []domain.FoodItem `json:"items"`
}

type SeedResponse struct {
	Message string `json:"message"`
}

type PlaceOrderRequest struct {
	Items []domain.OrderItem `json:"items"`
}

type PlaceOrderResponse struct {
	Message string `json:"message"`
	OrderID string `json:"orderId"`
}

type ListOrdersResponse struct {
	Orders []domain.PopulatedOrder `json:"orders"`
}

type FoodOrderServer interface {
	ListFood(context.Context, *Empty) (*ListFoodResponse, error)
	Seed(context.Context, *Empty) (*SeedResponse, error)
	PlaceOrder(context.Context, *PlaceOrderRequest) (*PlaceOrderResponse, error)
	ListOrders(context.Context, *Empty) (*ListOrdersResponse, error)
}

type GRPCHandler struct {
	catalog *service.CatalogService
	orders  *service.OrderService
	log     logrus.FieldLogger
}

func NewGRPCHandler(catalog *service.CatalogService, orders *service.OrderService, log logrus.FieldLogger) *GRPCHandler {
	return &GRPCHandler{catalog: catalog, orders: orders, log: log}
}

func RegisterFoodOrderServer(s grpc.ServiceRegistrar, srv FoodOrderServer) {
	s.RegisterService(&foodOrderServiceDesc, srv)
}

func (h *GRPCHandler) ListFood(ctx context.Context, _ *Empty) (*ListFoodResponse, error) {
	items, err := h.catalog.ListFood(ctx)
	if err != nil {
		return nil, h.internalError("list food", err)
	}
	return &ListFoodResponse{Items: items}, nil
}

func (h *GRPCHandler) Seed(ctx context.Context, _ *Empty) (*SeedResponse, error) {
	msg, err := h.catalog.Seed(ctx)
	if err != nil {
		return nil, h.internalError("seed", err)
	}
	return &SeedResponse{Message: msg}, nil
}

func (h *GRPCHandler) PlaceOrder(ctx context.Context, req *PlaceOrderRequest) (*PlaceOrderResponse, error) {
	id, err := h.orders.PlaceOrder(ctx, req.Items)
	if err != nil {
		if errors.Is(err, service.ErrEmptyOrder) {
			return nil, status.Error(codes.InvalidArgument, emptyOrderMessage)
		}
		return nil, h.internalError("place order", err)
	}

	return &PlaceOrderResponse{
		Message: service.OrderConfirmation,
		OrderID: id,
	}, nil
}

func (h *GRPCHandler) ListOrders(ctx context.Context, _ *Empty) (*ListOrdersResponse, error) {
	orders, err := h.orders.ListOrders(ctx)
	if err != nil {
		return nil, h.internalError("list orders", err)
	}
	return &ListOrdersResponse{Orders: orders}, nil
}

func (h *GRPCHandler) internalError(op string, err error) error {
	h.log.WithError(err).WithField("op", op).Error("rpc failed")
	return status.Error(codes.Internal, "internal error")
}

var foodOrderServiceDesc = grpc.ServiceDesc{
	ServiceName: FoodOrderServiceName,
	HandlerType: (*FoodOrderServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListFood", Handler: listFoodHandler},
		{MethodName: "Seed", Handler: seedHandler},
		{MethodName: "PlaceOrder", Handler: placeOrderHandler},
		{MethodName: "ListOrders", Handler: listOrdersHandler},
	},
	Streams: []grpc.StreamDesc{},
}

func listFoodHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FoodOrderServer).ListFood(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + FoodOrderServiceName + "/ListFood"}
	return interceptor(ctx, in, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FoodOrderServer).ListFood(ctx, req.(*Empty))
	})
}

func seedHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FoodOrderServer).Seed(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + FoodOrderServiceName + "/Seed"}
	return interceptor(ctx, in, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FoodOrderServer).Seed(ctx, req.(*Empty))
	})
}

func placeOrderHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PlaceOrderRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FoodOrderServer).PlaceOrder(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + FoodOrderServiceName + "/PlaceOrder"}
	return interceptor(ctx, in, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FoodOrderServer).PlaceOrder(ctx, req.(*PlaceOrderRequest))
	})
}

func listOrdersHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FoodOrderServer).ListOrders(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + FoodOrderServiceName + "/ListOrders"}
	return interceptor(ctx, in, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FoodOrderServer).ListOrders(ctx, req.(*Empty))
	})
}
