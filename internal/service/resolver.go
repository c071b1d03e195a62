package service

import (
	"context"
	"errors"

	"github.com/wb-go/wbf/logger"

	"github.com/unifyevents/cartgate/internal/domain"
	"github.com/unifyevents/cartgate/internal/service/ports"
	"github.com/unifyevents/cartgate/internal/session"
)

// UnknownPolicy decides how an unresolvable constraint behaves: the source
// system silently fell open to the single-participant default; strict mode
// blocks the action instead.
type UnknownPolicy string

const (
	PolicyFailOpen UnknownPolicy = "fail_open"
	PolicyStrict   UnknownPolicy = "strict"
)

type Resolver struct {
	constraints ports.ConstraintGateway
	policy      UnknownPolicy
	log         logger.Logger
}

func NewResolver(constraints ports.ConstraintGateway, policy UnknownPolicy, log logger.Logger) *Resolver {
	return &Resolver{
		constraints: constraints,
		policy:      policy,
		log:         log,
	}
}

// Resolve determines the participation bounds for an event, consulting the
// session cache first. Events without a constraint get the explicit Single
// default. Fetch failures yield the Unknown variant, which is never cached
// so a later call can retry.
func (r *Resolver) Resolve(ctx context.Context, creds *domain.Credentials, sess *session.Session, event domain.EventRef) domain.Constraint {
	if c, ok := sess.Constraint(event.ID); ok {
		return c
	}

	var (
		c   domain.Constraint
		err error
	)
	if event.ConstraintID != 0 {
		c, err = r.constraints.GetByID(ctx, creds, event.ConstraintID)
		if errors.Is(err, domain.ErrConstraintNotFound) {
			c, err = domain.SingleConstraint(), nil
		}
	} else {
		c, _, err = r.constraints.FindByEvent(ctx, creds, event.ID)
	}

	if err != nil {
		r.log.Warn("constraint resolution failed",
			logger.Int64("event_id", event.ID),
			logger.String("error", err.Error()),
		)
		return domain.UnknownConstraint()
	}

	sess.CacheConstraint(event.ID, c)
	return c
}

// Effective applies the unknown-constraint policy, forcing the caller to
// handle the Unknown variant explicitly.
func (r *Resolver) Effective(c domain.Constraint) (domain.Constraint, error) {
	if c.Kind != domain.ConstraintUnknown {
		return c, nil
	}

	if r.policy == PolicyStrict {
		return c, domain.ErrConstraintUnavailable
	}

	r.log.Warn("unresolved constraint treated as single-participant default")
	return domain.SingleConstraint(), nil
}

// ResolveEffective resolves and applies the policy in one step.
func (r *Resolver) ResolveEffective(ctx context.Context, creds *domain.Credentials, sess *session.Session, event domain.EventRef) (domain.Constraint, error) {
	return r.Effective(r.Resolve(ctx, creds, sess, event))
}
