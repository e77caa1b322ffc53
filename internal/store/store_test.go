package store_test

import (
	"log/slog"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Hariraj-0611/Leave-Management/internal"
	"github.com/Hariraj-0611/Leave-Management/internal/leave"
	"github.com/Hariraj-0611/Leave-Management/internal/store"
)

// Mock snapshot store for testing
type mockSnapshotStore struct {
	documents map[string][]byte
	loadError error
	saveError error
	saveCalls int
}

func newMockSnapshotStore() *mockSnapshotStore {
	return &mockSnapshotStore{documents: make(map[string][]byte)}
}

func (m *mockSnapshotStore) Load(key string) ([]byte, error) {
	if m.loadError != nil {
		return nil, m.loadError
	}
	doc, ok := m.documents[key]
	if !ok {
		return nil, store.ErrSnapshotNotFound
	}
	return doc, nil
}

func (m *mockSnapshotStore) Save(key string, document []byte) error {
	m.saveCalls++
	if m.saveError != nil {
		return m.saveError
	}
	m.documents[key] = document
	return nil
}

func (m *mockSnapshotStore) Delete(key string) error {
	delete(m.documents, key)
	return nil
}

var _ = Describe("Store", func() {
	var (
		snapshots *mockSnapshotStore
		st        *store.Store
		logger    *slog.Logger
	)

	const key = "leave_management_data"

	BeforeEach(func() {
		snapshots = newMockSnapshotStore()
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		st = store.New(snapshots, key, logger)
	})

	Describe("Load", func() {
		It("seeds sample data when no snapshot is persisted", func() {
			st.Load()
			Expect(st.State().Employees).To(HaveLen(4))
			Expect(snapshots.documents).To(HaveKey(key))
		})

		It("seeds sample data when the persisted document is garbage", func() {
			snapshots.documents[key] = []byte("{not json")
			st.Load()
			Expect(st.State().Employees).To(HaveLen(4))
		})

		It("restores a previously persisted snapshot", func() {
			st.Load()
			_, err := st.ApplyLeave(leave.ApplyLeaveDTO{
				EmployeeID: "emp_1",
				Type:       leave.TypeAnnual,
				StartDate:  "2024-03-01",
				EndDate:    "2024-03-03",
				Reason:     "Short break",
			})
			Expect(err).NotTo(HaveOccurred())

			restored := store.New(snapshots, key, logger)
			restored.Load()
			Expect(restored.State().Leaves).To(HaveLen(3))
		})
	})

	Describe("ApplyLeave", func() {
		BeforeEach(func() {
			st.Load()
		})

		It("returns the created leave", func() {
			created, err := st.ApplyLeave(leave.ApplyLeaveDTO{
				EmployeeID: "emp_1",
				Type:       leave.TypeAnnual,
				StartDate:  "2024-03-01",
				EndDate:    "2024-03-03",
				Reason:     "Short break",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(created.Status).To(Equal(leave.StatusPending))
			Expect(created.Days()).To(Equal(3))
		})

		It("rejects invalid input at the boundary without touching state", func() {
			before := st.State()

			_, err := st.ApplyLeave(leave.ApplyLeaveDTO{
				EmployeeID: "emp_1",
				Type:       leave.TypeAnnual,
				StartDate:  "2024-03-05",
				EndDate:    "2024-03-01",
				Reason:     "Reversed",
			})

			Expect(err).To(HaveOccurred())
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
			Expect(st.State().Leaves).To(HaveLen(len(before.Leaves)))
		})

		It("rejects an unknown employee", func() {
			_, err := st.ApplyLeave(leave.ApplyLeaveDTO{
				EmployeeID: "emp_999",
				Type:       leave.TypeAnnual,
				StartDate:  "2024-03-01",
				EndDate:    "2024-03-03",
				Reason:     "Ghost",
			})

			Expect(err).To(MatchError(internal.ErrEmployeeNotFound))
		})

		It("persists after the transition", func() {
			calls := snapshots.saveCalls
			_, err := st.ApplyLeave(leave.ApplyLeaveDTO{
				EmployeeID: "emp_1",
				Type:       leave.TypeAnnual,
				StartDate:  "2024-03-01",
				EndDate:    "2024-03-03",
				Reason:     "Short break",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(snapshots.saveCalls).To(Equal(calls + 1))
		})

		It("keeps the in-memory state authoritative when persistence fails", func() {
			snapshots.saveError = os.ErrPermission

			created, err := st.ApplyLeave(leave.ApplyLeaveDTO{
				EmployeeID: "emp_1",
				Type:       leave.TypeAnnual,
				StartDate:  "2024-03-01",
				EndDate:    "2024-03-03",
				Reason:     "Short break",
			})

			Expect(err).NotTo(HaveOccurred())
			_, found := st.State().LeaveByID(created.ID)
			Expect(found).To(BeTrue())
		})
	})

	Describe("UpdateLeaveStatus", func() {
		BeforeEach(func() {
			st.Load()
		})

		It("decides a pending leave", func() {
			Expect(st.UpdateLeaveStatus("leave_2", leave.StatusApproved, "emp_4")).To(Succeed())

			updated, _ := st.State().LeaveByID("leave_2")
			Expect(updated.Status).To(Equal(leave.StatusApproved))
		})

		It("reports an unknown leave without changing state", func() {
			err := st.UpdateLeaveStatus("leave_999", leave.StatusApproved, "emp_4")
			Expect(err).To(MatchError(internal.ErrLeaveNotFound))
		})

		It("rejects a second decision on the same leave", func() {
			Expect(st.UpdateLeaveStatus("leave_2", leave.StatusApproved, "emp_4")).To(Succeed())
			first, _ := st.State().LeaveByID("leave_2")

			err := st.UpdateLeaveStatus("leave_2", leave.StatusRejected, "emp_3")
			Expect(err).To(MatchError(internal.ErrLeaveAlreadyDecided))

			second, _ := st.State().LeaveByID("leave_2")
			Expect(second.ApprovedBy).To(Equal(first.ApprovedBy))
			Expect(second.ApprovedDate).To(Equal(first.ApprovedDate))
		})

		It("rejects a status outside approved/rejected", func() {
			err := st.UpdateLeaveStatus("leave_2", leave.StatusPending, "emp_4")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("SwitchUser and MarkNotificationRead", func() {
		BeforeEach(func() {
			st.Load()
		})

		It("switches to a known employee", func() {
			Expect(st.SwitchUser("emp_3")).To(Succeed())
			Expect(st.State().CurrentUser.ID).To(Equal("emp_3"))
		})

		It("reports an unknown employee and keeps the current user", func() {
			err := st.SwitchUser("emp_999")
			Expect(err).To(MatchError(internal.ErrEmployeeNotFound))
			Expect(st.State().CurrentUser.ID).To(Equal("emp_1"))
		})

		It("silently ignores an unknown notification", func() {
			before := st.State()
			st.MarkNotificationRead("notif_nope")
			Expect(st.State().Notifications).To(Equal(before.Notifications))
		})
	})

	Describe("ExportSnapshot and ImportSnapshot", func() {
		BeforeEach(func() {
			st.Load()
		})

		It("round-trips to an observably identical state", func() {
			_, err := st.ApplyLeave(leave.ApplyLeaveDTO{
				EmployeeID: "emp_2",
				Type:       leave.TypeCasual,
				StartDate:  "2024-04-01",
				EndDate:    "2024-04-02",
				Reason:     "Moving day",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(st.SwitchUser("emp_4")).To(Succeed())

			doc, err := st.ExportSnapshot()
			Expect(err).NotTo(HaveOccurred())

			fresh := store.New(newMockSnapshotStore(), key, logger)
			fresh.Load()
			Expect(fresh.ImportSnapshot(doc)).To(Succeed())

			again, err := fresh.ExportSnapshot()
			Expect(err).NotTo(HaveOccurred())
			Expect(again).To(MatchJSON(doc))

			Expect(fresh.State().Leaves).To(HaveLen(3))
			Expect(fresh.State().CurrentUser.ID).To(Equal("emp_4"))
		})

		It("exports exactly what is persisted", func() {
			doc, err := st.ExportSnapshot()
			Expect(err).NotTo(HaveOccurred())
			Expect(doc).To(Equal(snapshots.documents[key]))
		})

		It("rejects unparseable import payloads", func() {
			err := st.ImportSnapshot([]byte("definitely not json"))
			Expect(err).To(HaveOccurred())

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeImportInvalid))
		})

		It("replaces state wholesale on import", func() {
			doc, err := st.ExportSnapshot()
			Expect(err).NotTo(HaveOccurred())

			Expect(st.UpdateLeaveStatus("leave_2", leave.StatusApproved, "emp_4")).To(Succeed())
			Expect(st.ImportSnapshot(doc)).To(Succeed())

			restored, _ := st.State().LeaveByID("leave_2")
			Expect(restored.Status).To(Equal(leave.StatusPending))
		})
	})

	Describe("Reset", func() {
		It("discards the snapshot and reseeds", func() {
			st.Load()
			_, err := st.ApplyLeave(leave.ApplyLeaveDTO{
				EmployeeID: "emp_1",
				Type:       leave.TypeAnnual,
				StartDate:  "2024-03-01",
				EndDate:    "2024-03-03",
				Reason:     "Short break",
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(st.Reset()).To(Succeed())
			Expect(st.State().Leaves).To(HaveLen(2))
		})
	})

	Describe("Overlap boundary check", func() {
		It("delegates to the pure overlap query", func() {
			st.Load()
			Expect(st.HasOverlap("emp_2", leave.TypeSick, "2024-02-10", "2024-02-10")).To(BeTrue())
			Expect(st.HasOverlap("emp_2", leave.TypeSick, "2024-02-11", "2024-02-11")).To(BeFalse())
		})
	})
})
