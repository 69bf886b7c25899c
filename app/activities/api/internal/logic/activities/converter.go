package activities

import (
	"school-activities/app/activities/api/internal/types"
	"school-activities/app/activities/model"
)

// activityMapFromSnapshot 将目录快照转换为响应类型
// 快照已是深拷贝，这里只做结构映射
func activityMapFromSnapshot(snap model.Snapshot) types.ActivityMap {
	m := types.ActivityMap{
		Names:      snap.Names,
		Activities: make(map[string]types.ActivityInfo, len(snap.Activities)),
	}
	for name, a := range snap.Activities {
		m.Activities[name] = types.ActivityInfo{
			Description:     a.Description,
			Schedule:        a.Schedule,
			MaxParticipants: a.MaxParticipants,
			Participants:    a.Participants,
		}
	}
	return m
}
