package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("SerialEngine", func() {
	var (
		mockCtrl *gomock.Controller
		engine   *SerialEngine
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		engine = NewSerialEngine()
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should run events in time order", func() {
		handler := NewMockHandler(mockCtrl)

		evt1 := NewMockEvent(mockCtrl)
		evt1.EXPECT().Time().Return(VTimeInSec(2e-9)).AnyTimes()
		evt1.EXPECT().Handler().Return(handler).AnyTimes()

		evt2 := NewMockEvent(mockCtrl)
		evt2.EXPECT().Time().Return(VTimeInSec(1e-9)).AnyTimes()
		evt2.EXPECT().Handler().Return(handler).AnyTimes()

		gomock.InOrder(
			handler.EXPECT().Handle(evt2).Return(nil),
			handler.EXPECT().Handle(evt1).Return(nil),
		)

		engine.Schedule(evt1)
		engine.Schedule(evt2)

		err := engine.Run()

		Expect(err).NotTo(HaveOccurred())
		Expect(engine.CurrentTime()).To(Equal(VTimeInSec(2e-9)))
	})

	It("should run same-time events in scheduling order", func() {
		handler := NewMockHandler(mockCtrl)

		evt1 := NewMockEvent(mockCtrl)
		evt1.EXPECT().Time().Return(VTimeInSec(1e-9)).AnyTimes()
		evt1.EXPECT().Handler().Return(handler).AnyTimes()

		evt2 := NewMockEvent(mockCtrl)
		evt2.EXPECT().Time().Return(VTimeInSec(1e-9)).AnyTimes()
		evt2.EXPECT().Handler().Return(handler).AnyTimes()

		gomock.InOrder(
			handler.EXPECT().Handle(evt1).Return(nil),
			handler.EXPECT().Handle(evt2).Return(nil),
		)

		engine.Schedule(evt1)
		engine.Schedule(evt2)

		err := engine.Run()

		Expect(err).NotTo(HaveOccurred())
	})

	It("should panic when scheduling an event in the past", func() {
		handler := NewMockHandler(mockCtrl)

		evt1 := NewMockEvent(mockCtrl)
		evt1.EXPECT().Time().Return(VTimeInSec(2e-9)).AnyTimes()
		evt1.EXPECT().Handler().Return(handler).AnyTimes()
		handler.EXPECT().Handle(evt1).Return(nil)

		engine.Schedule(evt1)
		Expect(engine.Run()).To(Succeed())

		evtPast := NewMockEvent(mockCtrl)
		evtPast.EXPECT().Time().Return(VTimeInSec(1e-9)).AnyTimes()

		Expect(func() { engine.Schedule(evtPast) }).To(Panic())
	})

	It("should stop at the deadline and keep later events queued", func() {
		handler := NewMockHandler(mockCtrl)

		evt1 := NewMockEvent(mockCtrl)
		evt1.EXPECT().Time().Return(VTimeInSec(1e-9)).AnyTimes()
		evt1.EXPECT().Handler().Return(handler).AnyTimes()

		evt2 := NewMockEvent(mockCtrl)
		evt2.EXPECT().Time().Return(VTimeInSec(3e-9)).AnyTimes()
		evt2.EXPECT().Handler().Return(handler).AnyTimes()

		handler.EXPECT().Handle(evt1).Return(nil)

		engine.Schedule(evt1)
		engine.Schedule(evt2)

		err := engine.RunUntil(2e-9)

		Expect(err).NotTo(HaveOccurred())
		Expect(engine.CurrentTime()).To(Equal(VTimeInSec(1e-9)))

		handler.EXPECT().Handle(evt2).Return(nil)

		Expect(engine.Run()).To(Succeed())
		Expect(engine.CurrentTime()).To(Equal(VTimeInSec(3e-9)))
	})

	It("should invoke hooks around each event", func() {
		handler := NewMockHandler(mockCtrl)

		evt1 := NewMockEvent(mockCtrl)
		evt1.EXPECT().Time().Return(VTimeInSec(1e-9)).AnyTimes()
		evt1.EXPECT().Handler().Return(handler).AnyTimes()
		handler.EXPECT().Handle(evt1).Return(nil)

		var positions []*HookPos
		engine.AcceptHook(hookFunc(func(ctx HookCtx) {
			positions = append(positions, ctx.Pos)
		}))

		engine.Schedule(evt1)
		Expect(engine.Run()).To(Succeed())

		Expect(positions).To(Equal(
			[]*HookPos{HookPosBeforeEvent, HookPosAfterEvent}))
	})
})

type hookFunc func(ctx HookCtx)

func (f hookFunc) Func(ctx HookCtx) {
	f(ctx)
}
