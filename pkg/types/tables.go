package types

import "fmt"

type TableName string

func (s TableName) Name() string {
	return fmt.Sprintf("%s%s", TABLE_PREFIX, s)
}

const TABLE_PREFIX = "lk_"

const (
	TABLE_RESOURCE   = TableName("resources")
	TABLE_ATTACHMENT = TableName("attachments")
)

const NO_PAGINATION = 0
