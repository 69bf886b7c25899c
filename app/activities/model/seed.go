package model

// ==================== 种子数据 ====================
//
// 固定的 9 个课外活动，进程启动时一次性写入目录。
// 邮箱域名统一使用学校域 mergington.edu。

type seedActivity struct {
	name     string
	activity Activity
}

// seedActivities 按展示顺序排列，目录迭代顺序与此一致
var seedActivities = []seedActivity{
	{
		name: "Chess Club",
		activity: Activity{
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
	},
	{
		name: "Programming Class",
		activity: Activity{
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
	},
	{
		name: "Gym Class",
		activity: Activity{
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
	},
	{
		name: "Tennis Club",
		activity: Activity{
			Description:     "Practice tennis and compete in local school matches",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 10,
			Participants:    []string{"liam@mergington.edu", "ava@mergington.edu"},
		},
	},
	{
		name: "Art Studio",
		activity: Activity{
			Description:     "Explore painting, drawing and sculpture techniques",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"amelia@mergington.edu", "harper@mergington.edu"},
		},
	},
	{
		name: "Drama Club",
		activity: Activity{
			Description:     "Act, direct and produce the school theater performances",
			Schedule:        "Tuesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"ella@mergington.edu", "scarlett@mergington.edu"},
		},
	},
	{
		name: "Math Olympiad",
		activity: Activity{
			Description:     "Solve challenging problems and prepare for math competitions",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 10,
			Participants:    []string{"james@mergington.edu", "benjamin@mergington.edu"},
		},
	},
	{
		name: "Debate Team",
		activity: Activity{
			Description:     "Develop public speaking and argumentation skills",
			Schedule:        "Fridays, 4:00 PM - 5:30 PM",
			MaxParticipants: 12,
			Participants:    []string{"charlotte@mergington.edu", "henry@mergington.edu"},
		},
	},
	{
		name: "Science Club",
		activity: Activity{
			Description:     "Hands-on experiments and science fair projects",
			Schedule:        "Thursdays, 4:00 PM - 5:00 PM",
			MaxParticipants: 16,
			Participants:    []string{"mia@mergington.edu", "lucas@mergington.edu"},
		},
	},
}
