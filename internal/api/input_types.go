package api

type credentialsInput struct {
	Email      string `json:"email" form:"email"`
	Password   string `json:"password" form:"password"`
	RememberMe bool   `json:"remember_me" form:"remember_me"`
}

type changePasswordInput struct {
	Email           string `json:"email" form:"email"`
	CurrentPassword string `json:"current_password" form:"current_password"`
	NewPassword     string `json:"new_password" form:"new_password"`
}

type messageInput struct {
	Message string `json:"message" form:"message"`
}

type journalEntryInput struct {
	Content string `json:"content" form:"content"`
	Mood    string `json:"mood" form:"mood"`
}

type assessmentInput struct {
	PHQ9Score  int  `json:"phq9" form:"phq9"`
	GAD7Score  int  `json:"gad7" form:"gad7"`
	SafetyRisk bool `json:"safetyRisk" form:"safetyRisk"`
}

type profileInput struct {
	Name                string `json:"name" form:"name"`
	Role                string `json:"role" form:"role"`
	FreeTime            string `json:"freeTime" form:"freeTime"`
	TrustedContactName  string `json:"trustedContactName" form:"trustedContactName"`
	TrustedContactPhone string `json:"trustedContactPhone" form:"trustedContactPhone"`
}
