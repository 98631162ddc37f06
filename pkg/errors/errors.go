package errors

import "errors"

// ErrOptimisticLock 낙관적 잠금 충돌: 레코드가 이미 다른 작업에 의해 수정됨
var ErrOptimisticLock = errors.New("데이터가 다른 작업에 의해 수정되었습니다. 새로고침 후 다시 시도하세요")
