package database_test

import (
	"database/sql"
	"testing"

	"github.com/fekuna/worktech-api/internal/database"
	"github.com/stretchr/testify/assert"
)

func TestConditions(t *testing.T) {
	var c database.Conditions
	assert.Equal(t, "", c.Where())

	c.In("[Status]", "status", []string{"Active", "Spare"})
	c.NotIn("[Item_ID]", "notId", []string{"T-1"})
	c.In("[Dept]", "dept", nil)
	c.Add("[Type] = @type", sql.Named("type", "Equipment"))

	assert.Equal(t, 3, c.Len())
	assert.Equal(t,
		" where (1=0 or [Status] = @status0 or [Status] = @status1) and (1=1 and [Item_ID] <> @notId0) and [Type] = @type",
		c.Where())
	assert.Equal(t, []interface{}{
		sql.Named("status0", "Active"),
		sql.Named("status1", "Spare"),
		sql.Named("notId0", "T-1"),
		sql.Named("type", "Equipment"),
	}, c.Args())
}
