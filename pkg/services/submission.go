package services

import (
	"context"
	"log"
	"time"

	"github.com/softblush/signup-landing/pkg/cache"
	"github.com/softblush/signup-landing/pkg/clients/ingest"
	"github.com/softblush/signup-landing/pkg/models"
	"github.com/softblush/signup-landing/pkg/utils"
	"github.com/softblush/signup-landing/pkg/validation"
)

// DefaultSource tags payloads sent from the landing page
const DefaultSource = "softblush-landing"

const (
	MsgReceived                  = "Thank you for signing up! We have received your details."
	MsgAlreadyListed             = "You are already on our list. We appreciate your enthusiasm!"
	MsgRejectedPrefix            = "There was a problem processing your request: "
	MsgSavedLocallyNotConfigured = "Thank you for signing up! Your details have been saved locally. Configure the signup endpoint URL to enable remote delivery."
	MsgSavedLocallyUnreachable   = "Thank you for signing up! We couldn't reach the server, but your details have been saved locally."
)

// MessageSink receives the single message a submission ends with
type MessageSink interface {
	ResetMessages()
	ShowError(msg string)
	ShowSuccess(msg string)
}

// SignupCache is the local fallback record of signups
type SignupCache interface {
	Contains(ctx context.Context, email string) bool
	Append(ctx context.Context, signup models.Signup) cache.AppendResult
}

// Result describes how a submission resolved
type Result struct {
	Success bool
	Message string
	// ValidationErr is set when the submission never left validation
	ValidationErr error
	// Outcome is the zero value when no delivery was attempted
	Outcome       models.RemoteOutcome
	AlreadyCached bool
	Stored        bool
	Path          []State
}

// SignupController defines the interface for handling signup submissions
type SignupController interface {
	Submit(ctx context.Context, sink MessageSink, form models.SignupFormData) Result
}

type signupControllerImpl struct {
	client ingest.Client
	cache  SignupCache
	source string
	now    func() time.Time
}

// NewSignupController creates a controller delivering through client and
// falling back to signups. An empty source uses DefaultSource.
func NewSignupController(client ingest.Client, signups SignupCache, source string) SignupController {
	if source == "" {
		source = DefaultSource
	}
	return &signupControllerImpl{
		client: client,
		cache:  signups,
		source: source,
		now:    time.Now,
	}
}

// Submit runs one submission through validation, delivery and the local
// fallback, and shows exactly one message on sink.
func (s *signupControllerImpl) Submit(ctx context.Context, sink MessageSink, form models.SignupFormData) Result {
	m := newMachine()
	rid := utils.RequestID(ctx)

	sink.ResetMessages()
	m.to(StateValidating)

	in, err := validation.Validate(form.Name, form.Email, form.Honeypot)
	if err != nil {
		m.to(StateRejected)
		log.Printf("[%s] Rejected signup: %v", rid, err)
		return s.resolve(m, sink, Result{ValidationErr: err, Message: validation.Message(err)})
	}

	m.to(StateChecking)
	ref := utils.EmailRef(in.Email)
	already := s.cache.Contains(ctx, in.Email)
	if already {
		log.Printf("[%s] Signup %s already cached locally, delivering anyway", rid, ref)
	}

	m.to(StateDelivering)
	payload := models.SubmissionPayload{
		Name:     in.Name,
		Email:    in.Email,
		Honeypot: in.Honeypot,
		Source:   s.source,
		TS:       s.now().UTC().Format("2006-01-02T15:04:05.000Z"),
	}
	outcome := s.client.Deliver(ctx, payload)
	log.Printf("[%s] Delivery of %s: %s %s", rid, ref, outcome.Kind, outcome.Cause)

	res := Result{Outcome: outcome, AlreadyCached: already}
	if outcome.StoresLocally() {
		appended := s.cache.Append(ctx, models.Signup{Name: in.Name, Email: in.Email})
		if appended.Err != nil {
			log.Printf("[%s] Ignoring signup cache failure for %s: %v", rid, ref, appended.Err)
		}
		res.Stored = appended.Appended
	}

	switch outcome.Kind {
	case models.OutcomeAccepted:
		res.Success, res.Message = true, MsgReceived
	case models.OutcomeDuplicate:
		res.Success, res.Message = true, MsgAlreadyListed
	case models.OutcomeRejected:
		res.Message = MsgRejectedPrefix + outcome.Reason
	default:
		res.Success = true
		if outcome.Cause == models.CauseNotConfigured {
			res.Message = MsgSavedLocallyNotConfigured
		} else {
			res.Message = MsgSavedLocallyUnreachable
		}
	}
	return s.resolve(m, sink, res)
}

func (s *signupControllerImpl) resolve(m *machine, sink MessageSink, res Result) Result {
	if res.Success {
		sink.ShowSuccess(res.Message)
	} else {
		sink.ShowError(res.Message)
	}
	m.to(StateResolved)
	res.Path = m.path
	return res
}
