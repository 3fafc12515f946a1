package contracts

// ContractSubmission asks the agent pipeline to process a contract.
// Published to: staffline.contracts
// Key: {request_id}
type ContractSubmission struct {
	RequestID string   `json:"request_id"`
	ATSSystem string   `json:"ats_system"`
	Contract  Contract `json:"contract"`
	Timestamp string   `json:"timestamp"`
}

// Request lifecycle states.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// RequestStatus tracks a submitted request through the agents.
type RequestStatus struct {
	RequestID            string `json:"request_id"`
	Source               string `json:"source"`
	Status               string `json:"status"`
	Stage                string `json:"stage"`
	CoordinationsCount   int    `json:"coordinations_count"`
	RecommendationsCount int    `json:"recommendations_count"`
}

// Topic names used in the distributed architecture.
const (
	// TopicContracts carries ContractSubmission messages.
	TopicContracts = "staffline.contracts"

	// TopicCoordination carries AgentCoordination events between agents.
	TopicCoordination = "staffline.coordination"

	// TopicRecommendations carries Recommendation outputs of every agent.
	TopicRecommendations = "staffline.recommendations"
)
