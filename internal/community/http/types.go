package http

type createProjectReq struct {
	ChallengeID string `json:"challenge_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Owner       string `json:"owner" binding:"required"`
	CodeSnippet string `json:"code_snippet"`
	Thumbnail   string `json:"thumbnail"`
}

type feedbackMetadataReq struct {
	CodeDiff string `json:"code_diff"`
	Caption  string `json:"caption"`
}

type addFeedbackReq struct {
	Author   string               `json:"author" binding:"required"`
	Type     string               `json:"type" binding:"required"`
	Content  string               `json:"content" binding:"required"`
	Metadata *feedbackMetadataReq `json:"metadata"`
}

type voteReq struct {
	VoterID string `json:"voter_id"`
}

type statusReq struct {
	Status string `json:"status" binding:"required,oneof=DRAFT TESTING FINALIZED"`
}
