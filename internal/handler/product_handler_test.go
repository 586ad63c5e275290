package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	apperrors "ecommerce-api/internal/errors"
	"ecommerce-api/internal/models"
	"ecommerce-api/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newProductRouter(svc *mocks.MockProductService) *gin.Engine {
	router := gin.New()
	h := NewProductHandler(svc)
	router.GET("/products", h.List)
	router.GET("/products/:id", h.Get)
	router.POST("/products", h.Create)
	router.PUT("/products/:id", h.Update)
	router.DELETE("/products/:id", h.Delete)
	return router
}

func validProductBody() gin.H {
	return gin.H{
		"title":       "Wireless Headphones",
		"description": "Over-ear wireless headphones with noise cancellation",
		"price":       199.99,
		"quantity":    25,
		"category":    primitive.NewObjectID().Hex(),
		"brand":       primitive.NewObjectID().Hex(),
	}
}

func TestProductHandler_List(t *testing.T) {
	t.Run("forwards the raw query to the service", func(t *testing.T) {
		var gotQuery url.Values
		svc := &mocks.MockProductService{
			ListProductsFunc: func(ctx context.Context, query url.Values) (*models.Page[models.Product], error) {
				gotQuery = query
				return &models.Page[models.Product]{Results: []models.Product{}}, nil
			},
		}
		router := newProductRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/products?price_gte=100&search=phone&sort=-price", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "100", gotQuery.Get("price_gte"))
		assert.Equal(t, "phone", gotQuery.Get("search"))
		assert.Equal(t, "-price", gotQuery.Get("sort"))
	})
}

func TestProductHandler_Get(t *testing.T) {
	t.Run("returns the product", func(t *testing.T) {
		id := primitive.NewObjectID()
		svc := &mocks.MockProductService{
			GetProductFunc: func(ctx context.Context, gotID primitive.ObjectID) (*models.Product, error) {
				assert.Equal(t, id, gotID)
				return &models.Product{ID: id, Title: "Wireless Headphones"}, nil
			},
		}
		router := newProductRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/products/"+id.Hex(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Wireless Headphones")
	})

	t.Run("invalid id returns 400", func(t *testing.T) {
		router := newProductRouter(&mocks.MockProductService{})

		req := httptest.NewRequest(http.MethodGet, "/products/not-an-id", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing product returns 404", func(t *testing.T) {
		svc := &mocks.MockProductService{
			GetProductFunc: func(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
				return nil, apperrors.ErrProductNotFound
			},
		}
		router := newProductRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/products/"+primitive.NewObjectID().Hex(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestProductHandler_Create(t *testing.T) {
	t.Run("success returns 201", func(t *testing.T) {
		svc := &mocks.MockProductService{
			CreateProductFunc: func(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
				require.Equal(t, "Wireless Headphones", req.Title)
				return &models.Product{ID: primitive.NewObjectID(), Title: req.Title, Slug: "wireless-headphones"}, nil
			},
		}

		w := postJSON(t, newProductRouter(svc), "/products", validProductBody())

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "wireless-headphones")
	})

	t.Run("duplicate title returns 409", func(t *testing.T) {
		svc := &mocks.MockProductService{
			CreateProductFunc: func(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
				return nil, apperrors.ErrProductExists
			},
		}

		w := postJSON(t, newProductRouter(svc), "/products", validProductBody())

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("unknown category returns 404", func(t *testing.T) {
		svc := &mocks.MockProductService{
			CreateProductFunc: func(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
				return nil, apperrors.ErrCategoryNotFound
			},
		}

		w := postJSON(t, newProductRouter(svc), "/products", validProductBody())

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad discount returns 400", func(t *testing.T) {
		svc := &mocks.MockProductService{
			CreateProductFunc: func(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
				return nil, apperrors.ErrInvalidDiscountPrice
			},
		}

		w := postJSON(t, newProductRouter(svc), "/products", validProductBody())

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("non hex category fails binding", func(t *testing.T) {
		body := validProductBody()
		body["category"] = "not-hex"

		w := postJSON(t, newProductRouter(&mocks.MockProductService{}), "/products", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("short description fails binding", func(t *testing.T) {
		body := validProductBody()
		body["description"] = "too short"

		w := postJSON(t, newProductRouter(&mocks.MockProductService{}), "/products", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProductHandler_Update(t *testing.T) {
	id := primitive.NewObjectID()

	t.Run("partial update succeeds", func(t *testing.T) {
		var gotReq *models.UpdateProductRequest
		svc := &mocks.MockProductService{
			UpdateProductFunc: func(ctx context.Context, gotID primitive.ObjectID, req *models.UpdateProductRequest) (*models.Product, error) {
				assert.Equal(t, id, gotID)
				gotReq = req
				return &models.Product{ID: id, Price: 149.99}, nil
			},
		}
		router := newProductRouter(svc)

		w := putJSON(t, router, "/products/"+id.Hex(), gin.H{"price": 149.99})

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, gotReq.Price)
		assert.InDelta(t, 149.99, *gotReq.Price, 0.001)
		assert.Nil(t, gotReq.Title)
	})

	t.Run("missing product returns 404", func(t *testing.T) {
		svc := &mocks.MockProductService{
			UpdateProductFunc: func(ctx context.Context, gotID primitive.ObjectID, req *models.UpdateProductRequest) (*models.Product, error) {
				return nil, apperrors.ErrProductNotFound
			},
		}

		w := putJSON(t, newProductRouter(svc), "/products/"+id.Hex(), gin.H{"price": 149.99})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestProductHandler_Delete(t *testing.T) {
	t.Run("success returns 204", func(t *testing.T) {
		id := primitive.NewObjectID()
		var deleted primitive.ObjectID
		svc := &mocks.MockProductService{
			DeleteProductFunc: func(ctx context.Context, gotID primitive.ObjectID) error {
				deleted = gotID
				return nil
			},
		}
		router := newProductRouter(svc)

		req := httptest.NewRequest(http.MethodDelete, "/products/"+id.Hex(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, id, deleted)
	})

	t.Run("missing product returns 404", func(t *testing.T) {
		svc := &mocks.MockProductService{
			DeleteProductFunc: func(ctx context.Context, id primitive.ObjectID) error {
				return apperrors.ErrProductNotFound
			},
		}
		router := newProductRouter(svc)

		req := httptest.NewRequest(http.MethodDelete, "/products/"+primitive.NewObjectID().Hex(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
