package handlers

import (
	"buildsurge/internal/config"
	"buildsurge/internal/services"
	"buildsurge/internal/store"
)

type Deps struct {
	InquiryHandler *InquiryHandler
	PageHandler    *PageHandler
}

func NewDeps(st store.Store, cfg config.Config) *Deps {
	svc := services.NewInquiryService(st)
	return &Deps{
		InquiryHandler: &InquiryHandler{Inquiries: svc},
		PageHandler:    &PageHandler{Inquiries: svc},
	}
}
