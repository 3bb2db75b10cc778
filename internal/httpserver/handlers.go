package httpserver

import (
	"errors"
	"net/http"

	"brewshop/internal/cart"
	"brewshop/internal/checkout"
	"brewshop/internal/domain"
	"brewshop/internal/storefront"
	"brewshop/internal/ui"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type handlers struct {
	deps   Deps
	logger *zap.Logger
}

func (h *handlers) internalError(c *gin.Context, msg string, err error) {
	h.logger.Error(msg, zap.String("path", c.FullPath()), zap.Error(err))
	_ = c.Error(err)
	writeError(c, http.StatusInternalServerError, "internal error")
}

func (h *handlers) createSession(c *gin.Context) {
	token, id, err := h.deps.Sessions.Issue(c.Request.Context())
	if err != nil {
		h.internalError(c, "issue session", err)
		return
	}
	c.JSON(http.StatusCreated, sessionResponse{Token: token, SessionID: id, ExpiresIn: h.deps.Sessions.TTLSeconds()})
}

func (h *handlers) listBrews(c *gin.Context) {
	brews, err := h.deps.BrewSvc.List(c.Request.Context())
	if err != nil {
		h.internalError(c, "list brews", err)
		return
	}

	inCart := func(string) bool { return false }
	if id, ok := sessionID(c); ok {
		names := map[string]bool{}
		err := h.deps.Registry.With(c.Request.Context(), id, func(st *storefront.State) error {
			for _, b := range brews {
				names[b.Name] = st.Cart.Contains(b.Name)
			}
			return nil
		})
		if err != nil {
			h.internalError(c, "load session", err)
			return
		}
		inCart = func(name string) bool { return names[name] }
	}

	out := make([]brewResponse, 0, len(brews))
	for _, b := range brews {
		out = append(out, toBrewResponse(b, inCart(b.Name)))
	}
	c.JSON(http.StatusOK, gin.H{"brews": out})
}

func (h *handlers) getBrew(c *gin.Context) {
	b, err := h.deps.BrewSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(c, http.StatusNotFound, "brew not found")
			return
		}
		h.internalError(c, "get brew", err)
		return
	}
	c.JSON(http.StatusOK, toBrewResponse(*b, false))
}

func (h *handlers) getCart(c *gin.Context) {
	id, _ := sessionID(c)
	var resp cartResponse
	err := h.deps.Registry.With(c.Request.Context(), id, func(st *storefront.State) error {
		resp = toCartResponse(st.Cart.Snapshot())
		return nil
	})
	if err != nil {
		h.internalError(c, "load session", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// addCartItem adds one unit of a brew. A brew already in the cart is left as
// is and reported with added=false.
func (h *handlers) addCartItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "brewId is required")
		return
	}
	b, err := h.deps.BrewSvc.Get(c.Request.Context(), req.BrewID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(c, http.StatusNotFound, "brew not found")
			return
		}
		h.internalError(c, "get brew", err)
		return
	}

	id, _ := sessionID(c)
	var resp addItemResponse
	err = h.deps.Registry.With(c.Request.Context(), id, func(st *storefront.State) error {
		resp.Added = !st.Cart.Contains(b.Name)
		resp.Cart = toCartResponse(st.Cart.Dispatch(c.Request.Context(), cart.AddToCart(*b, 1)))
		return nil
	})
	if err != nil {
		h.internalError(c, "load session", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handlers) mountCheckout(c *gin.Context) {
	id, _ := sessionID(c)
	var resp checkoutResponse
	err := h.deps.Registry.With(c.Request.Context(), id, func(st *storefront.State) error {
		if err := h.deps.Checkout.Mount(c.Request.Context(), st.Session()); err != nil {
			return err
		}
		resp = checkoutView(st)
		return nil
	})
	if err != nil {
		h.internalError(c, "mount checkout", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handlers) submitCheckout(c *gin.Context) {
	var form checkout.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		writeError(c, http.StatusBadRequest, "invalid checkout form")
		return
	}

	id, _ := sessionID(c)
	var (
		resp      checkoutResponse
		submitErr error
	)
	err := h.deps.Registry.With(c.Request.Context(), id, func(st *storefront.State) error {
		submitErr = h.deps.Checkout.Submit(c.Request.Context(), st.Session(), form)
		resp = checkoutView(st)
		return nil
	})
	if err != nil {
		h.internalError(c, "load session", err)
		return
	}

	var (
		ve *checkout.ValidationError
		pe *checkout.PaymentError
	)
	switch {
	case submitErr == nil:
		c.JSON(http.StatusCreated, resp)
	case errors.As(submitErr, &ve):
		c.JSON(http.StatusUnprocessableEntity, resp)
	case errors.As(submitErr, &pe):
		c.JSON(http.StatusPaymentRequired, resp)
	default:
		h.internalError(c, "submit checkout", submitErr)
	}
}

func checkoutView(st *storefront.State) checkoutResponse {
	return checkoutResponse{
		Cart:     toCartResponse(st.Cart.Snapshot()),
		Phase:    st.Checkout.Phase(),
		Form:     toDraftResponse(st.Checkout.Draft()),
		Errors:   st.Checkout.Errors(),
		UI:       *st.UI,
		Navigate: st.TakeNavigation(),
	}
}

func (h *handlers) getUI(c *gin.Context) {
	h.withUI(c, nil)
}

func (h *handlers) resetToast(c *gin.Context) {
	h.withUI(c, func(u *ui.State) { u.DispatchToast(ui.ResetToast()) })
}

func (h *handlers) closeModal(c *gin.Context) {
	h.withUI(c, func(u *ui.State) { u.DispatchModal(ui.CloseModal()) })
}

func (h *handlers) withUI(c *gin.Context, update func(*ui.State)) {
	id, _ := sessionID(c)
	var resp ui.State
	err := h.deps.Registry.With(c.Request.Context(), id, func(st *storefront.State) error {
		if update != nil {
			update(st.UI)
		}
		resp = *st.UI
		return nil
	})
	if err != nil {
		h.internalError(c, "load session", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
