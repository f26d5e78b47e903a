package query

import "social-service/internal/application/common"

type MemberQueryResult struct {
	Result *common.MemberResult `json:"result"`
}
