package domain

import (
	"errors"
	"time"
)

// RequestStatus represents the lifecycle state of a service request.
type RequestStatus string

const (
	RequestPending      RequestStatus = "pending"
	RequestInProgress   RequestStatus = "in_progress"
	RequestAwaitingInfo RequestStatus = "awaiting_info"
	RequestValidating   RequestStatus = "validating"
	RequestCompleted    RequestStatus = "completed"
	RequestRejected     RequestStatus = "rejected"
)

// validRequestTransitions defines the allowed state machine transitions.
// Completed and rejected are terminal.
var validRequestTransitions = map[RequestStatus][]RequestStatus{
	RequestPending:      {RequestInProgress, RequestRejected},
	RequestInProgress:   {RequestAwaitingInfo, RequestValidating, RequestRejected},
	RequestAwaitingInfo: {RequestInProgress},
	RequestValidating:   {RequestCompleted, RequestRejected},
}

var ErrRequestNotFound = errors.New("request not found")

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	for _, allowed := range validRequestTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ServiceRequest is a single administrative-service case filed by a client.
// ClientEmail is always stored normalized so ownership matching is
// case-insensitive.
type ServiceRequest struct {
	ID             string        `json:"id" bson:"_id"`
	ServiceType    string        `json:"service_type" bson:"service_type"`
	SubType        string        `json:"sub_type,omitempty" bson:"sub_type,omitempty"`
	ServiceOption  string        `json:"service_option,omitempty" bson:"service_option,omitempty"`
	Country        string        `json:"country" bson:"country"`
	City           string        `json:"city" bson:"city"`
	Status         RequestStatus `json:"status" bson:"status"`
	ClientName     string        `json:"client_name" bson:"client_name"`
	ClientEmail    string        `json:"client_email" bson:"client_email"`
	AdditionalInfo string        `json:"additional_info,omitempty" bson:"additional_info,omitempty"`
	AgentID        string        `json:"agent_id,omitempty" bson:"agent_id,omitempty"`
	SubmittedAt    time.Time     `json:"submitted_at" bson:"submitted_at"`
}
