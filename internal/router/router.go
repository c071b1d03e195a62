package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListEvents(c *ginext.Context)
	ListEventSlots(c *ginext.Context)
	StartFlow(c *ginext.Context)
	AbandonFlow(c *ginext.Context)
	ChooseCount(c *ginext.Context)
	AddFlowParticipant(c *ginext.Context)
	FlowBack(c *ginext.Context)
	FlowSlots(c *ginext.Context)
	PickFlowSlot(c *ginext.Context)
	GetCart(c *ginext.Context)
	SetTeamSize(c *ginext.Context)
	ChangeItemSlot(c *ginext.Context)
	UpdateCartParticipant(c *ginext.Context)
	RemoveCartParticipant(c *ginext.Context)
	RemoveCartItem(c *ginext.Context)
	Checkout(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Browse
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id/slots", h.ListEventSlots)

		// Add-to-cart flow
		api.POST("/cart/flows", h.StartFlow)
		api.DELETE("/cart/flows", h.AbandonFlow)
		api.POST("/cart/flows/count", h.ChooseCount)
		api.POST("/cart/flows/participants", h.AddFlowParticipant)
		api.POST("/cart/flows/participants/back", h.FlowBack)
		api.GET("/cart/flows/slots", h.FlowSlots)
		api.POST("/cart/flows/slot", h.PickFlowSlot)

		// Cart
		api.GET("/cart", h.GetCart)
		api.PATCH("/cart/items/:id/team-size", h.SetTeamSize)
		api.PATCH("/cart/items/:id/slot", h.ChangeItemSlot)
		api.PATCH("/cart/items/:id/participants/:pid", h.UpdateCartParticipant)
		api.DELETE("/cart/items/:id/participants/:pid", h.RemoveCartParticipant)
		api.DELETE("/cart/items/:id", h.RemoveCartItem)
		api.POST("/cart/checkout", h.Checkout)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
