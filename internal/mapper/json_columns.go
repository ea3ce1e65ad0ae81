package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// jsonb column helpers shared by the mappers. Marshal failures on our own
// types cannot happen; unmarshal failures on stored rows yield the zero value
// rather than poisoning a whole list read.

func toJSONColumn(v interface{}) datatypes.JSON {
	if v == nil {
		return datatypes.JSON("null")
	}
	data, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON("null")
	}
	return datatypes.JSON(data)
}

func fromJSONColumn(col datatypes.JSON, out interface{}) {
	if len(col) == 0 {
		return
	}
	_ = json.Unmarshal(col, out)
}
