package v1

import "time"

type TaskSubmitRequest = CompileRequest

type TaskSubmitResponseBody struct {
	TaskID string `json:"task_id"`
}

type TaskSubmitResponse struct {
	Response
	Data TaskSubmitResponseBody `json:"data"`
}

type TaskResultResponseBody struct {
	TaskID    string               `json:"task_id"`
	SubmitID  string               `json:"submit_id"`
	Language  string               `json:"language"`
	Status    string               `json:"status" enums:"Pending,Success,Failed"`
	Result    *CompileResponseBody `json:"result,omitempty"`
	CreatedAt time.Time            `json:"created_at"`
}

type TaskResultResponse struct {
	Response
	Data TaskResultResponseBody `json:"data"`
}

type TaskListResponseBody struct {
	Total int64                    `json:"total"`
	Tasks []TaskResultResponseBody `json:"tasks"`
}

type TaskListResponse struct {
	Response
	Data TaskListResponseBody `json:"data"`
}
