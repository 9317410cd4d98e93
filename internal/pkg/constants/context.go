package constants

type ctxKey string

const (
	CtxKeyRequestID ctxKey = "request_id"
	CtxKeyRole      ctxKey = "role"
)

// RoleGovernment is the only role allowed to mutate compliance state, notices,
// auctions and reports.
const RoleGovernment = "government"
