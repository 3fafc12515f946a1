package coordinate

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudwego/eino/compose"

	"staffline-agent/src/ats"
	"staffline-agent/src/contracts"
)

// Graph node keys, one per agent.
const (
	nodeContractCompliance = "contract_compliance"
	nodeRecruiting         = "recruiting"
	nodeProjectManagement  = "project_management"
)

var errNoHandoff = errors.New("recruiting stage produced no capacity planning hand-off")

// workflowState is threaded through the graph; each node fills in its part.
type workflowState struct {
	session  *Session
	provider ats.Provider

	contract contracts.Contract
	job      contracts.Job
	handoff  *contracts.AgentCoordination
	result   *contracts.WorkflowResult

	// failure keeps the stage error unwrapped by the graph runtime.
	failure error
}

func (st *workflowState) fail(err error) error {
	st.failure = err
	return err
}

// SimulateFullWorkflow pulls fixtures from the named ATS and runs contract compliance,
// candidate matching and capacity planning in order. Unknown ATS labels are accepted.
// The returned coordinations are the session's whole log, including earlier runs.
func (c *Coordinator) SimulateFullWorkflow(ctx context.Context, session *Session, atsLabel string) (*contracts.WorkflowResult, error) {
	provider, err := ats.Resolve(atsLabel)
	if err != nil {
		return nil, err
	}
	return c.RunWorkflow(ctx, session, provider)
}

// RunWorkflow runs the full pipeline against an explicit provider.
func (c *Coordinator) RunWorkflow(ctx context.Context, session *Session, provider ats.Provider) (*contracts.WorkflowResult, error) {
	c.logger.Info("[Coordinator] Session %s: running workflow against %s", session.ID, provider.Name())

	st := &workflowState{
		session:  session,
		provider: provider,
		result: &contracts.WorkflowResult{
			SessionID: session.ID,
			ATSSystem: provider.Name(),
		},
	}

	result, err := c.workflow.Invoke(ctx, st)
	if err != nil {
		if st.failure != nil {
			err = st.failure
		}
		return nil, fmt.Errorf("workflow failed: %w", err)
	}
	return result, nil
}

func (c *Coordinator) buildWorkflow(ctx context.Context) (compose.Runnable[*workflowState, *contracts.WorkflowResult], error) {
	g := compose.NewGraph[*workflowState, *contracts.WorkflowResult]()

	nodes := []struct {
		key    string
		lambda *compose.Lambda
	}{
		{nodeContractCompliance, compose.InvokableLambda(c.contractNode)},
		{nodeRecruiting, compose.InvokableLambda(c.recruitingNode)},
		{nodeProjectManagement, compose.InvokableLambda(c.planningNode)},
	}
	for _, n := range nodes {
		if err := g.AddLambdaNode(n.key, n.lambda); err != nil {
			return nil, fmt.Errorf("failed to add %s node: %w", n.key, err)
		}
	}

	edges := [][2]string{
		{compose.START, nodeContractCompliance},
		{nodeContractCompliance, nodeRecruiting},
		{nodeRecruiting, nodeProjectManagement},
		{nodeProjectManagement, compose.END},
	}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("failed to add edge %s -> %s: %w", e[0], e[1], err)
		}
	}

	runnable, err := g.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile workflow graph: %w", err)
	}
	return runnable, nil
}

func (c *Coordinator) contractNode(ctx context.Context, st *workflowState) (*workflowState, error) {
	fetched, err := st.provider.FetchContracts(ctx)
	if err != nil {
		return nil, st.fail(err)
	}
	if len(fetched) == 0 {
		return nil, st.fail(ats.ErrNoContracts)
	}
	st.contract = fetched[0]

	res, err := c.ProcessNewContract(ctx, st.session, st.contract)
	if err != nil {
		return nil, st.fail(err)
	}
	st.result.ContractAnalysis = res.Recommendations
	return st, nil
}

func (c *Coordinator) recruitingNode(ctx context.Context, st *workflowState) (*workflowState, error) {
	jobs, err := st.provider.FetchJobs(ctx)
	if err != nil {
		return nil, st.fail(err)
	}
	if len(jobs) == 0 {
		return nil, st.fail(ats.ErrNoJobs)
	}
	st.job = jobs[0]

	candidates, err := st.provider.FetchCandidates(ctx, st.job.ID)
	if err != nil {
		return nil, st.fail(err)
	}

	res, err := c.ProcessCandidateMatching(ctx, st.session, st.job, candidates)
	if err != nil {
		return nil, st.fail(err)
	}
	st.result.CandidateMatching = res.Recommendations
	st.handoff = res.Coordination
	return st, nil
}

func (c *Coordinator) planningNode(ctx context.Context, st *workflowState) (*contracts.WorkflowResult, error) {
	if st.handoff == nil {
		return nil, st.fail(errNoHandoff)
	}
	var payload contracts.CapacityPlanningPayload
	if err := st.handoff.DecodeData(&payload); err != nil {
		return nil, st.fail(err)
	}

	res, err := c.ProcessCapacityPlanning(ctx, st.session, contracts.ProjectData{
		Name:              titleOr(st.contract.Title, st.job.Title),
		JobID:             payload.JobID,
		MatchedCandidates: payload.MatchedCandidates,
	})
	if err != nil {
		return nil, st.fail(err)
	}

	st.session.advance(StageDone)
	st.result.CapacityPlanning = res.Recommendations
	st.result.Coordinations = st.session.Log.Entries()
	st.result.Stage = st.session.Stage().String()
	return st.result, nil
}
