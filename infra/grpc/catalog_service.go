package grpc

import (
	"catalog/domain"
	"context"
	"errors"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const CatalogServiceName = "catalog.v1.CatalogService"

// CatalogServiceServer is the read-only catalog API. Messages are protobuf
// well-known types, so the service needs no generated code.
type CatalogServiceServer interface {
	GetCategory(context.Context, *wrapperspb.Int64Value) (*structpb.Struct, error)
	GetProduct(context.Context, *wrapperspb.Int64Value) (*structpb.Struct, error)
}

var CatalogServiceDesc = grpc.ServiceDesc{
	ServiceName: CatalogServiceName,
	HandlerType: (*CatalogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetCategory", Handler: unaryHandler(CatalogServiceServer.GetCategory, "GetCategory")},
		{MethodName: "GetProduct", Handler: unaryHandler(CatalogServiceServer.GetProduct, "GetProduct")},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "catalog/v1/catalog.proto",
}

func unaryHandler(
	call func(CatalogServiceServer, context.Context, *wrapperspb.Int64Value) (*structpb.Struct, error),
	method string,
) grpc.MethodHandler {
	fullMethod := "/" + CatalogServiceName + "/" + method

	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(wrapperspb.Int64Value)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(CatalogServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(CatalogServiceServer), ctx, req.(*wrapperspb.Int64Value))
		}
		return interceptor(ctx, in, info, handler)
	}
}

type Repository interface {
	GetCategoryByID(ctx context.Context, id int64) (domain.Category, error)
	GetProductDetailByID(ctx context.Context, id int64) (domain.ProductDetail, error)
}

type CatalogService struct {
	repository Repository
}

func NewCatalogService(repository Repository) *CatalogService {
	return &CatalogService{
		repository: repository,
	}
}

func (s *CatalogService) GetCategory(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.Struct, error) {
	if req.GetValue() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "category id must be positive")
	}

	category, err := s.repository.GetCategoryByID(ctx, req.GetValue())
	if err != nil {
		return nil, mapError(err, "category not found")
	}

	return structpb.NewStruct(map[string]interface{}{
		"id":        category.ID,
		"name":      category.Name,
		"createdAt": formatTime(category.CreatedAt),
		"updatedAt": formatTime(category.UpdatedAt),
	})
}

func (s *CatalogService) GetProduct(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.Struct, error) {
	if req.GetValue() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "product id must be positive")
	}

	product, err := s.repository.GetProductDetailByID(ctx, req.GetValue())
	if err != nil {
		return nil, mapError(err, "product not found")
	}

	var description interface{}
	if product.Description != nil {
		description = *product.Description
	}

	return structpb.NewStruct(map[string]interface{}{
		"id":          product.ID,
		"name":        product.Name,
		"description": description,
		"price":       product.Price.String(),
		"currency":    product.Currency,
		"quantity":    product.Quantity,
		"available":   product.Available,
		"categoryId":  product.CategoryID,
		"category": map[string]interface{}{
			"name": product.Category.Name,
		},
		"createdAt": formatTime(product.CreatedAt),
		"updatedAt": formatTime(product.UpdatedAt),
	})
}

func mapError(err error, notFound string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return status.Error(codes.NotFound, notFound)
	}
	return status.Error(codes.Internal, "internal error")
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
