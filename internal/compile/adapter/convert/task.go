package convert

import (
	v1 "github.com/Wenrh2004/playground/api/v1"
	"github.com/Wenrh2004/playground/internal/compile/domain/aggregate"
)

func TaskSubmitRequestConvert(request *v1.TaskSubmitRequest, userID string, submitID string) *aggregate.Task {
	return &aggregate.Task{
		SubmitID: submitID,
		UserID:   userID,
		Request:  *CompileRequestConvert(request),
	}
}

// TaskResultResponseConvert leaves Result empty while the task is pending.
func TaskResultResponseConvert(task *aggregate.Task) *v1.TaskResultResponseBody {
	body := &v1.TaskResultResponseBody{
		TaskID:    task.ID,
		SubmitID:  task.SubmitID,
		Language:  task.Request.Language.String(),
		Status:    task.Status.GetMsg(),
		CreatedAt: task.CreatedAt,
	}
	if task.Result != nil {
		body.Result = CompileResponseConvert(&task.Request, task.Result.Seal(), task.UpdatedAt)
	}
	return body
}

func TaskListResponseConvert(tasks []*aggregate.Task, total int64) *v1.TaskListResponseBody {
	body := &v1.TaskListResponseBody{
		Total: total,
		Tasks: make([]v1.TaskResultResponseBody, 0, len(tasks)),
	}
	for _, task := range tasks {
		body.Tasks = append(body.Tasks, *TaskResultResponseConvert(task))
	}
	return body
}
