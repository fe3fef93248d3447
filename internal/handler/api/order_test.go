//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"orders-service/internal/handler/api"
	resdto "orders-service/internal/handler/dto/response"
	"orders-service/internal/handler/middleware"
	"orders-service/internal/usecase/commands"
	"orders-service/internal/usecase/queries"
	"orders-service/tests/common/builder"
	"orders-service/tests/common/httptest"
	"orders-service/tests/common/testutil"
	commandsmock "orders-service/tests/mock/commands"
	queriesmock "orders-service/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOrderCommands
	mockQueries  *queriesmock.MockOrderQueries
	handler      *api.OrderHandler
	userID       uuid.UUID
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.handler = api.NewOrderHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.userID)
		c.Next()
	}

	validateCreate := middleware.ValidateBody(
		middleware.RequiredField("productId"),
		middleware.UUIDField("productId"),
	)

	s.router.POST("/orders", authMiddleware, validateCreate, s.handler.CreateOrder)
	s.router.GET("/orders/:id", authMiddleware, s.handler.GetOrder)
	s.router.GET("/orders", authMiddleware, s.handler.GetUserOrders)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

// ================================================================================
// TestCreateOrder
// ================================================================================

func (s *OrderHandlerTestSuite) TestCreateOrder() {
	url := "/orders"

	b := builder.NewOrderBuilder()
	reqBody := b.BuildCreateRequestDTO()
	returnView := b.BuildView()
	returnView.UserID = s.userID
	expectedResult := &commands.CreateOrderResult{Order: returnView}

	s.Run("success: returns 201 Created with the persisted order", func() {
		s.mockCommands.EXPECT().CreateOrder(gomock.Any(), s.userID, b.ProductID).
			Return(expectedResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(s.userID, response.UserID)
		s.Equal("created", response.Status)
		s.Equal(b.ProductID, response.Product.ID)
		s.Equal(b.ProductTitle, response.Product.Title)
		s.Equal(b.ProductPriceCents, response.Product.Price)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/orders/" + returnView.ID.String()})
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name         string
			mutate       func(m map[string]any)
			expectInBody string
		}{
			{
				name:         "missing field: productId (required)",
				mutate:       testutil.Field("productId", nil),
				expectInBody: "productId must be provided",
			},
			{
				name:         "empty productId",
				mutate:       testutil.Field("productId", ""),
				expectInBody: "productId must be provided",
			},
			{
				name:         "malformed productId",
				mutate:       testutil.Field("productId", "not-a-uuid"),
				expectInBody: "productId must be a valid identifier",
			},
			{
				name:         "non-string productId",
				mutate:       testutil.Field("productId", 12345),
				expectInBody: "productId must be a valid identifier",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.expectInBody)
			})
		}
	})

	s.Run("error: validators run in declaration order", func() {
		// Both validators would fail on nil; the required check reports first.
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("productId", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "productId must be provided")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "product not found",
				commandsError:  commands.ErrProductNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Product not found",
			},
			{
				name:           "product already reserved",
				commandsError:  commands.ErrProductReserved,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "product is already reserved",
			},
			{
				name:           "domain validation error",
				commandsError:  commands.ErrDomainValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Domain validation failed",
			},
			{
				name:           "event publish failed",
				commandsError:  commands.ErrEventPublishFailed,
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
			{
				name:           "database operation failed",
				commandsError:  commands.ErrDatabaseOperationFailed,
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateOrder(gomock.Any(), s.userID, b.ProductID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetOrder
// ================================================================================

func (s *OrderHandlerTestSuite) TestGetOrder() {
	orderID := uuid.New()
	url := "/orders/" + orderID.String()

	returnView := builder.NewOrderBuilder().BuildView()
	returnView.ID = orderID
	returnView.UserID = s.userID

	s.Run("success: returns 200 OK with OrderResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, orderID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(orderID, response.ID)
		s.Equal(returnView.Status, response.Status)
		s.Equal(returnView.ProductTitle, response.Product.Title)
		s.WithinDuration(returnView.ExpiresAt, response.ExpiresAt, time.Second)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid order ID format")
	})

	s.Run("error: 404 Not Found for missing order", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, orderID).
			Return(nil, queries.ErrOrderNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Order not found")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, orderID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestGetUserOrders
// ================================================================================

func (s *OrderHandlerTestSuite) TestGetUserOrders() {
	url := "/orders"

	items := []*queries.OrderListItem{
		builder.NewOrderBuilder().BuildListItem(),
		builder.NewOrderBuilder().BuildListItem(),
		builder.NewOrderBuilder().BuildListItem(),
	}

	s.Run("success: returns the caller's orders", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []*resdto.OrderListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, len(items))
		s.Equal(items[0].ID, response[0].ID)
		s.Equal(items[0].ProductTitle, response[0].Product.Title)
	})

	s.Run("success: empty list for a user with no orders", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).
			Return([]*queries.OrderListItem{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []*resdto.OrderListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
