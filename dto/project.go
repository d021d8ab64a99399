package dto

// CreateProjectRequest represents the payload to submit a project.
// PrincipalAuthorID is honored only for admin callers; authors always
// become the principal author themselves.
type CreateProjectRequest struct {
	Title             string   `json:"title" binding:"required"`
	ThematicArea      string   `json:"thematicArea" binding:"required"`
	Abstract          string   `json:"abstract" binding:"required"`
	AwardID           string   `json:"awardId" binding:"required"`
	AuthorIDs         []string `json:"authorIds"`
	PrincipalAuthorID string   `json:"principalAuthorId"`
}

// UpdateProjectRequest represents the payload for a structural update
type UpdateProjectRequest struct {
	Title        string   `json:"title"`
	ThematicArea string   `json:"thematicArea"`
	Abstract     string   `json:"abstract"`
	AwardID      string   `json:"awardId"`
	AuthorIDs    []string `json:"authorIds"`
}

// ProjectQuery carries the typed relationship-expansion flags for listings
type ProjectQuery struct {
	WithAuthors     bool
	WithEvaluations bool
}
