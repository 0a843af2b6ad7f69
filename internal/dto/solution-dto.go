package dto

type SolutionInputDTO struct {
	Solution string `json:"solution" validate:"required"`
	// Без required: ноль - легальное значение, выход за [0,100] зажимается сервисом.
	Confidence    int      `json:"confidence"`
	EstimatedTime string   `json:"estimated_time" validate:"required"`
	Steps         []string `json:"steps" validate:"required,min=1,dive,required"`
}

type AddSolutionsDTO struct {
	Solutions []SolutionInputDTO `json:"solutions" validate:"required,min=1,dive"`
}
