package agents

import (
	"context"
	"encoding/json"
	"fmt"

	"staffline-agent/src/broker"
	"staffline-agent/src/contracts"
	"staffline-agent/src/coordinate"
	"staffline-agent/src/store"
)

// Recorder persists every coordination event and recommendation and keeps the
// request status current.
type Recorder struct {
	base
}

// NewRecorder creates a recorder writing to st.
func NewRecorder(brk broker.Broker, st store.Store, opts ...Option) *Recorder {
	r := &Recorder{base: newBase("Recorder", brk, opts)}
	r.store = st
	return r
}

// Run consumes staffline.coordination and staffline.recommendations until both
// channels close or ctx is cancelled.
func (r *Recorder) Run(ctx context.Context) error {
	r.logger.Info("[%s] Starting...", r.name)

	events, err := r.broker.Subscribe(ctx, contracts.TopicCoordination, r.group())
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", contracts.TopicCoordination, err)
	}
	recs, err := r.broker.Subscribe(ctx, contracts.TopicRecommendations, r.group())
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", contracts.TopicRecommendations, err)
	}

	r.logger.Info("[%s] Recording '%s' and '%s'...", r.name, contracts.TopicCoordination, contracts.TopicRecommendations)
	r.ready()

	for events != nil || recs != nil {
		select {
		case msg, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if err := r.recordCoordination(ctx, msg); err != nil {
				r.logger.Error("[%s] Error recording coordination %s: %v", r.name, msg.Key, err)
			}

		case msg, ok := <-recs:
			if !ok {
				recs = nil
				continue
			}
			if err := r.recordRecommendation(ctx, msg); err != nil {
				r.logger.Error("[%s] Error recording recommendation %s: %v", r.name, msg.Key, err)
			}

		case <-ctx.Done():
			r.logger.Info("[%s] Context cancelled, shutting down", r.name)
			return ctx.Err()
		}
	}

	r.logger.Info("[%s] Message channels closed, shutting down", r.name)
	return nil
}

func (r *Recorder) recordCoordination(ctx context.Context, msg broker.Message) error {
	var event contracts.AgentCoordination
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal coordination: %w", err)
	}
	requestID := requestIDOf(msg, event.SessionID)

	if err := r.store.SaveCoordination(ctx, requestID, &event); err != nil {
		return err
	}

	return r.update(ctx, requestID, func(status *contracts.RequestStatus) bool {
		status.CoordinationsCount++
		return settle(status)
	})
}

func (r *Recorder) recordRecommendation(ctx context.Context, msg broker.Message) error {
	var rec contracts.Recommendation
	if err := json.Unmarshal(msg.Value, &rec); err != nil {
		return fmt.Errorf("failed to unmarshal recommendation: %w", err)
	}
	requestID := requestIDOf(msg, rec.SessionID)

	if err := r.store.SaveRecommendation(ctx, requestID, &rec); err != nil {
		return err
	}

	stage, last := stageAfter(rec)
	return r.update(ctx, requestID, func(status *contracts.RequestStatus) bool {
		status.RecommendationsCount++
		if current, ok := coordinate.ParseStage(status.Stage); !ok || stage > current {
			status.Stage = stage.String()
		}
		if status.Status == contracts.StatusFailed || status.Status == contracts.StatusCompleted {
			return false
		}
		// A contract without roles hands nothing off, so nothing else will arrive.
		if last && stage == coordinate.StageContractProcessed {
			complete(status)
			return true
		}
		status.Status = contracts.StatusProcessing
		return settle(status)
	})
}

// update creates the request if an agent reported on it before it was submitted
// through the store, then applies fn atomically. fn reports whether it completed
// the request.
func (r *Recorder) update(ctx context.Context, requestID string, fn func(*contracts.RequestStatus) bool) error {
	if err := r.store.CreateRequest(ctx, requestID, ""); err != nil {
		return err
	}

	var completed bool
	err := r.store.ModifyRequest(ctx, requestID, func(status *contracts.RequestStatus) {
		completed = fn(status)
	})
	if err != nil {
		return err
	}
	if completed {
		r.logger.Info("[%s] Request %s completed", r.name, requestID)
	}
	return nil
}

// handoffsPerRequest is the number of coordination events a request with roles
// produces: source_candidates and capacity_planning.
const handoffsPerRequest = 2

// settle completes a request once capacity planning is recorded and every
// hand-off has landed. Recommendations and coordination events arrive on
// separate topics, so either may come last.
func settle(status *contracts.RequestStatus) bool {
	if status.Status != contracts.StatusProcessing {
		return false
	}
	stage, ok := coordinate.ParseStage(status.Stage)
	if !ok || stage < coordinate.StageCapacityPlanned || status.CoordinationsCount < handoffsPerRequest {
		return false
	}
	complete(status)
	return true
}

func complete(status *contracts.RequestStatus) {
	status.Status = contracts.StatusCompleted
	status.Stage = coordinate.StageDone.String()
}

// stageAfter maps a recommendation to the stage it completes and reports whether
// it is the last recommendation of its request. A contract without roles ends
// the pipeline early.
func stageAfter(rec contracts.Recommendation) (coordinate.Stage, bool) {
	switch rec.Type {
	case contracts.RecommendationContractCompliance:
		roles, ok := intField(rec.Data, "roles_required")
		return coordinate.StageContractProcessed, ok && roles == 0
	case contracts.RecommendationCandidateMatch:
		return coordinate.StageCandidatesMatched, false
	case contracts.RecommendationCapacityPlanning:
		return coordinate.StageCapacityPlanned, true
	default:
		return coordinate.StageIdle, false
	}
}

// intField reads a number from JSON-decoded data.
func intField(data map[string]any, key string) (int, bool) {
	switch v := data[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	default:
		return 0, false
	}
}

func requestIDOf(msg broker.Message, sessionID string) string {
	if msg.Key != "" {
		return msg.Key
	}
	return sessionID
}
