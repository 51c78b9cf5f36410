//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"storefront-checkout/internal/domain/cart"
	"storefront-checkout/internal/domain/catalog"
	"storefront-checkout/internal/domain/stock"
	"storefront-checkout/internal/handler/api"
	reqdto "storefront-checkout/internal/handler/dto/request"
	resdto "storefront-checkout/internal/handler/dto/response"
	"storefront-checkout/internal/handler/middleware"
	"storefront-checkout/internal/usecase/cartstore"
	"storefront-checkout/internal/usecase/commands"
	"storefront-checkout/tests/common/builder"
	"storefront-checkout/tests/common/httptest"
	"storefront-checkout/tests/common/testutil"
	commandsmock "storefront-checkout/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartHandlerTestSuite struct {
	suite.Suite
	fx        *apiFixture
	mockCtrl  *gomock.Controller
	mockCart  *commandsmock.MockCartCommands
	mockStock *commandsmock.MockStockChecker
	item      catalog.Item
}

func (s *CartHandlerTestSuite) SetupTest() {
	s.fx = newAPIFixture(s.T())
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCart = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.mockStock = commandsmock.NewMockStockChecker(s.mockCtrl)
	s.item = builder.NewItemBuilder().Build()

	h := api.NewCartHandler(s.mockCart, s.mockStock)
	s.fx.api.GET("/cart", h.Get)
	s.fx.api.DELETE("/cart", h.Clear)
	s.fx.api.POST("/cart/items", h.AddItem)
	s.fx.api.PATCH("/cart/items", h.UpdateItem)
	s.fx.api.DELETE("/cart/items", h.RemoveItem)
	s.fx.api.GET("/cart/remote", s.fx.auth.RequireAuth(), h.Remote)
	s.fx.api.POST("/cart/stock-check", h.StockCheck)
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func (s *CartHandlerTestSuite) primedSession() (string, *cartstore.Session) {
	deviceID, session := s.fx.session(s.T())
	s.Require().NoError(session.Cart().Add(s.item, "50ml", 2))
	return deviceID, session
}

// ================================================================================
// TestGet
// ================================================================================

func (s *CartHandlerTestSuite) TestGet() {
	s.Run("new device gets an id and an empty cart", func() {
		rec := httptest.PerformRequest(s.T(), s.fx.router, http.MethodGet, "/api/cart", nil, "")

		var body resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		deviceID := rec.Header().Get(middleware.DeviceIDHeader)
		s.NotEmpty(deviceID)
		s.Equal(deviceID, body.DeviceID)
		s.Empty(body.Lines)
		s.Equal("0.00", body.Subtotal)
		s.NotNil(httptest.ExtractCookie(rec, "device_id"))
	})

	s.Run("known device sees its lines", func() {
		deviceID, _ := s.primedSession()

		rec := httptest.PerformRequestWithHeaders(s.T(), s.fx.router, http.MethodGet, "/api/cart", nil, deviceHeaders(deviceID), "")

		var body resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(deviceID, body.DeviceID)
		s.Require().Len(body.Lines, 1)
		s.Equal("50ml", body.Lines[0].Size)
		s.Equal("120.00", body.Lines[0].UnitPrice)
		s.Equal(2, body.ItemCount)
		s.Equal("240.00", body.Subtotal)
	})

	s.Run("malformed device id is reissued", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.fx.router, http.MethodGet, "/api/cart", nil, deviceHeaders("not-a-uuid"), "")

		s.Equal(http.StatusOK, rec.Code)
		issued := rec.Header().Get(middleware.DeviceIDHeader)
		s.NotEqual("not-a-uuid", issued)
		_, err := uuid.Parse(issued)
		s.NoError(err)
	})
}

// ================================================================================
// TestAddItem
// ================================================================================

func (s *CartHandlerTestSuite) TestAddItem() {
	url := "/api/cart/items"
	reqBody := reqdto.AddCartItemRequest{ItemID: s.item.ID(), Size: " 50ml ", Quantity: 1}

	s.Run("success: delegates with the trimmed size", func() {
		deviceID, _ := s.fx.session(s.T())
		s.mockCart.EXPECT().AddItem(gomock.Any(), gomock.Any(), s.item.ID(), "50ml", 1).
			DoAndReturn(func(_ any, session *cartstore.Session, _ uuid.UUID, size string, qty int) error {
				return session.Cart().Add(s.item, size, qty)
			}).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.fx.router, http.MethodPost, url, reqBody, deviceHeaders(deviceID), "")

		var body resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Lines, 1)
		s.Equal(1, body.ItemCount)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate testutil.Mutation
		}{
			{name: "missing itemId", mutate: testutil.Without("itemId")},
			{name: "itemId is not a uuid", mutate: testutil.Set("itemId", "velvet-rose")},
			{name: "quantity too large", mutate: testutil.Set("quantity", 100)},
			{name: "negative quantity", mutate: testutil.Set("quantity", -1)},
			{name: "size too long", mutate: testutil.Set("size", "a-very-long-size-label-that-overflows")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.RequestMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.fx.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: unknown item maps to 404", func() {
		s.mockCart.EXPECT().AddItem(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(catalog.ErrItemNotAvailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.fx.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, catalog.ErrItemNotAvailable.Error())
	})

	s.Run("error: unexpected failures are not echoed", func() {
		s.mockCart.EXPECT().AddItem(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("connection reset by peer")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.fx.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
		s.NotContains(rec.Body.String(), "connection reset")
	})
}

// ================================================================================
// TestUpdateRemoveClear
// ================================================================================

func (s *CartHandlerTestSuite) TestUpdateRemoveClear() {
	s.Run("update sets the quantity", func() {
		deviceID, session := s.primedSession()
		req := reqdto.UpdateCartItemRequest{ItemID: s.item.ID(), Size: "50ml", Quantity: 5}

		rec := httptest.PerformRequestWithHeaders(s.T(), s.fx.router, http.MethodPatch, "/api/cart/items", req, deviceHeaders(deviceID), "")

		var body resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(5, body.ItemCount)
		s.Equal(5, session.Cart().ItemCount())
	})

	s.Run("update to zero removes the line", func() {
		deviceID, session := s.primedSession()
		req := reqdto.UpdateCartItemRequest{ItemID: s.item.ID(), Size: "50ml", Quantity: 0}

		rec := httptest.PerformRequestWithHeaders(s.T(), s.fx.router, http.MethodPatch, "/api/cart/items", req, deviceHeaders(deviceID), "")

		s.Equal(http.StatusOK, rec.Code)
		s.True(session.Cart().IsEmpty())
	})

	s.Run("remove drops only the matching size", func() {
		deviceID, session := s.primedSession()
		s.Require().NoError(session.Cart().Add(s.item, "100ml", 1))
		req := reqdto.RemoveCartItemRequest{ItemID: s.item.ID(), Size: "50ml"}

		rec := httptest.PerformRequestWithHeaders(s.T(), s.fx.router, http.MethodDelete, "/api/cart/items", req, deviceHeaders(deviceID), "")

		var body resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Lines, 1)
		s.Equal("100ml", body.Lines[0].Size)
	})

	s.Run("clear empties the cart", func() {
		deviceID, session := s.primedSession()

		rec := httptest.PerformRequestWithHeaders(s.T(), s.fx.router, http.MethodDelete, "/api/cart", nil, deviceHeaders(deviceID), "")

		s.Equal(http.StatusNoContent, rec.Code)
		s.True(session.Cart().IsEmpty())
	})
}

// ================================================================================
// TestRemote
// ================================================================================

func (s *CartHandlerTestSuite) TestRemote() {
	s.Run("signed out is rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.fx.router, http.MethodGet, "/api/cart/remote", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Sign in required")
	})

	s.Run("invalid token is treated as signed out", func() {
		token := s.fx.tokens.CreateForeignToken(s.T(), uuid.New())
		rec := httptest.PerformRequest(s.T(), s.fx.router, http.MethodGet, "/api/cart/remote", nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Sign in required")
	})

	s.Run("returns the identity's server-side lines", func() {
		identity := uuid.New()
		token := s.fx.tokens.GenerateToken(s.T(), identity)
		lines := []cart.RemoteLine{{ID: uuid.New(), Identity: identity, ItemID: s.item.ID(), Size: "50ml", Quantity: 3}}
		s.mockCart.EXPECT().RemoteCart(gomock.Any(), identity).Return(lines, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.fx.router, http.MethodGet, "/api/cart/remote", nil, token)

		var body []resdto.RemoteCartLineResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(3, body[0].Quantity)
	})
}

// ================================================================================
// TestStockCheck
// ================================================================================

func (s *CartHandlerTestSuite) TestStockCheck() {
	s.Run("reports blocking lines", func() {
		deviceID, _ := s.primedSession()
		results := stock.Results{stock.Evaluate(s.item.ID(), "50ml", 2, 1, true)}
		s.mockStock.EXPECT().Validate(gomock.Any(), gomock.Len(1)).Return(results, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.fx.router, http.MethodPost, "/api/cart/stock-check", nil, deviceHeaders(deviceID), "")

		var body resdto.StockCheckResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.HasBlockingIssues)
		s.Require().Len(body.Results, 1)
		s.Equal(1, body.Results[0].Available)
		s.False(body.Results[0].OK)
	})

	s.Run("lookup failure maps to 503", func() {
		s.mockStock.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(nil, commands.ErrStockCheckFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.fx.router, http.MethodPost, "/api/cart/stock-check", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "")
	})
}
