package ops

import (
	"strings"

	"github.com/ayumik/jobtrack/internal/company"
	"github.com/ayumik/jobtrack/internal/errors"
	"github.com/ayumik/jobtrack/internal/repo"
)

// AddTodoInput contains parameters for the AddTodo operation.
type AddTodoInput struct {
	CompanyID string
	Text      string
}

// TodoOutput contains the result of todo mutations.
type TodoOutput struct {
	TodoID  string          `json:"todo_id"`
	Company company.Company `json:"company"`
}

// AddTodo appends an unchecked todo to the company.
func AddTodo(r *repo.Repository, input AddTodoInput) (*TodoOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, errors.NewInvalidRequest("todo text is required")
	}

	c, err := r.Get(input.CompanyID)
	if err != nil {
		return nil, err
	}

	id, err := company.NewID()
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	c.Todos = append(c.Todos, company.Todo{ID: id, Text: text, Completed: false})

	if err := r.Save(*c); err != nil {
		return nil, err
	}

	return &TodoOutput{TodoID: id, Company: *c}, nil
}

// ToggleTodoInput contains parameters for the ToggleTodo operation.
type ToggleTodoInput struct {
	CompanyID string
	TodoID    string
}

// ToggleTodo flips a todo's completed flag.
func ToggleTodo(r *repo.Repository, input ToggleTodoInput) (*TodoOutput, error) {
	c, err := r.Get(input.CompanyID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range c.Todos {
		if c.Todos[i].ID == input.TodoID {
			c.Todos[i].Completed = !c.Todos[i].Completed
			found = true
			break
		}
	}
	if !found {
		return nil, errors.NewInvalidRequest("todo not found: " + input.TodoID)
	}

	if err := r.Save(*c); err != nil {
		return nil, err
	}

	return &TodoOutput{TodoID: input.TodoID, Company: *c}, nil
}

// DeleteTodoInput contains parameters for the DeleteTodo operation.
type DeleteTodoInput struct {
	CompanyID string
	TodoID    string
}

// DeleteTodo removes a todo from the company.
func DeleteTodo(r *repo.Repository, input DeleteTodoInput) (*TodoOutput, error) {
	c, err := r.Get(input.CompanyID)
	if err != nil {
		return nil, err
	}

	kept := make([]company.Todo, 0, len(c.Todos))
	found := false
	for _, td := range c.Todos {
		if td.ID == input.TodoID {
			found = true
			continue
		}
		kept = append(kept, td)
	}
	if !found {
		return nil, errors.NewInvalidRequest("todo not found: " + input.TodoID)
	}

	c.Todos = kept
	if err := r.Save(*c); err != nil {
		return nil, err
	}

	return &TodoOutput{TodoID: input.TodoID, Company: *c}, nil
}
