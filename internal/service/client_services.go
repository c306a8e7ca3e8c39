package service

import (
	"github.com/MKhiriev/webcrm-console/internal/adapter"
	"github.com/MKhiriev/webcrm-console/internal/logger"
	"github.com/MKhiriev/webcrm-console/internal/validators"
)

type ClientServices struct {
	AuthService         AuthService
	SummaryService      SummaryService
	ConfirmationService ConfirmationService
	DifferenceService   DifferenceService
	CustomerService     CustomerService
	DestinationService  DestinationService
	ReferenceService    ReferenceService
	SummaryJob          SummaryJob
}

func NewClientServices(webcrm adapter.WebCRMAdapter, sessions SessionManager, validator validators.Validator, log *logger.Logger) *ClientServices {
	summarySvc := NewSummaryService(webcrm, log.WithComponent("summary"))

	return &ClientServices{
		AuthService:         NewAuthService(webcrm, sessions, log.WithComponent("auth")),
		SummaryService:      summarySvc,
		ConfirmationService: NewConfirmationService(webcrm, log.WithComponent("confirmation")),
		DifferenceService:   NewDifferenceService(webcrm, log.WithComponent("difference")),
		CustomerService:     NewCustomerService(webcrm, log.WithComponent("customers")),
		DestinationService:  NewDestinationService(webcrm, validator, log.WithComponent("destinations")),
		ReferenceService:    NewReferenceService(webcrm, validator, log.WithComponent("references")),
		SummaryJob:          NewSummaryJob(summarySvc),
	}
}
