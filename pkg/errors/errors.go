package errors

import "errors"

// ErrDuplicateKey 唯一约束冲突：同一键的记录已存在
// 仅在并发写入绕过 create-or-update 路径时出现
var ErrDuplicateKey = errors.New("记录已存在，唯一约束冲突")
