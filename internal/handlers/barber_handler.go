package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hvrSSB04/ssb-backend/internal/dto"
	"github.com/hvrSSB04/ssb-backend/internal/httperr"
	"github.com/hvrSSB04/ssb-backend/internal/httpresp"
	ucBarber "github.com/hvrSSB04/ssb-backend/internal/usecase/barber"
)

type BarberHandler struct {
	list *ucBarber.List
}

func NewBarberHandler(list *ucBarber.List) *BarberHandler {
	return &BarberHandler{list: list}
}

// List returns every registered barber as a directory card, credential
// stripped and display fields derived at read time.
func (h *BarberHandler) List(c *gin.Context) {
	barbers, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "Failed to fetch barbers")
		return
	}

	httpresp.OK(c, dto.NewBarberCards(barbers))
}
