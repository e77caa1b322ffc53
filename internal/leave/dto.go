package leave

import "errors"

// ApplyLeaveDTO is the request payload for submitting a leave application.
type ApplyLeaveDTO struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	Type       string `json:"type" validate:"required"`
	StartDate  string `json:"start_date" validate:"required"`
	EndDate    string `json:"end_date" validate:"required"`
	Reason     string `json:"reason" validate:"required,min=1,max=500"`
}

// Validate validates the ApplyLeaveDTO.
func (dto ApplyLeaveDTO) Validate() error {
	if dto.EmployeeID == "" {
		return errors.New("employee id is required")
	}
	if dto.Type == "" {
		return errors.New("leave type is required")
	}
	start, ok := ParseDate(dto.StartDate)
	if !ok {
		return errors.New("start date must be a valid date (YYYY-MM-DD)")
	}
	end, ok := ParseDate(dto.EndDate)
	if !ok {
		return errors.New("end date must be a valid date (YYYY-MM-DD)")
	}
	if end.Before(start) {
		return errors.New("end date must not be before start date")
	}
	if dto.Reason == "" {
		return errors.New("reason is required")
	}
	if len(dto.Reason) > 500 {
		return errors.New("reason must be less than 500 characters")
	}
	return nil
}

// UpdateLeaveStatusDTO is the request for deciding a pending leave.
type UpdateLeaveStatusDTO struct {
	Status     Status `json:"status" validate:"required,oneof=approved rejected"`
	ApproverID string `json:"approver_id" validate:"required"`
}

// Validate validates the UpdateLeaveStatusDTO.
func (dto UpdateLeaveStatusDTO) Validate() error {
	if dto.Status != StatusApproved && dto.Status != StatusRejected {
		return errors.New("status must be either 'approved' or 'rejected'")
	}
	if dto.ApproverID == "" {
		return errors.New("approver id is required")
	}
	return nil
}
