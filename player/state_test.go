package player

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestStateMachine(t *testing.T) {
	Convey("stateMachine", t, func() {
		var changes []StateChange
		sm := stateMachine{
			current: NotStarted,
			onChange: func(from, to State) {
				changes = append(changes, StateChange{Old: from, New: to})
			},
		}

		Convey("Should follow documented transitions", func() {
			So(sm.set(Idle), ShouldBeTrue)
			So(sm.set(Loading), ShouldBeTrue)
			So(sm.set(Playing), ShouldBeTrue)
			So(sm.set(Paused), ShouldBeTrue)
			So(sm.set(Playing), ShouldBeTrue)
			So(sm.set(Stopped), ShouldBeTrue)
			So(sm.set(NotStarted), ShouldBeTrue)
			So(changes, ShouldHaveLength, 7)
			So(changes[0], ShouldResemble, StateChange{Old: NotStarted, New: Idle})
		})

		Convey("Should ignore self transitions", func() {
			sm.set(Idle)
			So(sm.set(Idle), ShouldBeFalse)
			So(changes, ShouldHaveLength, 1)
		})

		Convey("Should refuse undocumented transitions", func() {
			So(sm.set(Playing), ShouldBeFalse)
			So(sm.set(Loading), ShouldBeFalse)

			sm.set(Idle)
			So(sm.set(Paused), ShouldBeFalse)
			So(sm.current, ShouldEqual, Idle)
		})

		Convey("Should reach Buffering from anywhere but NotStarted", func() {
			So(canTransition(NotStarted, Buffering), ShouldBeFalse)
			for _, from := range []State{Idle, Loading, Playing, Paused, Stopped} {
				So(canTransition(from, Buffering), ShouldBeTrue)
			}
		})
	})
}
