package errors

import "errors"

// SkipMessageError 消费者遇到不应重试的消息时返回，调用方 ack 后跳过
type SkipMessageError struct {
	Reason string
}

func (e *SkipMessageError) Error() string {
	return "skip message: " + e.Reason
}

func IsSkipMessageError(err error) bool {
	var skip *SkipMessageError
	return errors.As(err, &skip)
}
