package httpx

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// MaxIDLen — верхняя граница длины идентификаторов в пути.
const MaxIDLen = 128

// PathID — непустой параметр пути не длиннее MaxIDLen (пробелы по краям отбрасываются).
func PathID(c *gin.Context, name string) (string, bool) {
	v := strings.TrimSpace(c.Param(name))
	if v == "" || len(v) > MaxIDLen {
		return "", false
	}
	return v, true
}

// AreaItem — пара area/item из пути /basket/:areaId/:itemId.
func AreaItem(c *gin.Context) (areaID, itemID string, ok bool) {
	areaID, okA := PathID(c, "areaId")
	itemID, okI := PathID(c, "itemId")
	return areaID, itemID, okA && okI
}
