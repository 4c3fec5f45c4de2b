package snowflake

import (
	"errors"
	"sync"

	"github.com/bwmarrin/snowflake"
)

const maxWorkerID = 31

var (
	node *snowflake.Node
	once sync.Once

	errInvalidWorkerID = errors.New("snowflake worker id out of range")
	errNotInitialized  = errors.New("snowflake generator is not initialized")
)

// Init 装配进程级的 ID 生成器，重复调用只生效一次。
// dataCenterID 和 machineID 各占 5 bit，合并成 snowflake 的 node ID。
func Init(machineID, dataCenterID int64) error {
	var initErr error

	once.Do(func() {
		if machineID < 0 || machineID > maxWorkerID || dataCenterID < 0 || dataCenterID > maxWorkerID {
			initErr = errInvalidWorkerID
			return
		}

		node, initErr = snowflake.NewNode((dataCenterID << 5) | machineID)
	})

	return initErr
}

// NextID 生成一个全局唯一的对外 ID
func NextID() (int64, error) {
	if node == nil {
		return 0, errNotInitialized
	}

	return node.Generate().Int64(), nil
}
