package dto

// DeleteDataRequest: payload for the generic delete endpoint. Table carries
// the localized logical table label, not a physical table name.
type DeleteDataRequest struct {
	Table string `json:"table" binding:"required"`
	ID    int64  `json:"id" binding:"required"`
}
