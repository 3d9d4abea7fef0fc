/*
Package tracker contains the editing session of the tab editor: the state
that is shared between the transport, the cursor navigation and the edit
commands.

The Model struct holds the playing position, the editing cursor and the
transport state. The track itself is owned by a document store; the Model
only reads it through the Document interface and changes it by issuing
measure and note commands.

The GUI does not modify the Model data directly. Instead, there are Actions
and Bools which manipulate the model in a controlled way. For example,
model.Transport().Toggle() returns an Action to start or stop playback, which
can be executed with model.Transport().Toggle().Do(). Key presses are mapped
to the same actions through a table of key bindings, see Model.HandleKey.

The Model is owned by a single goroutine (the GUI). Transport ticks are
delivered by a Frames scheduler on that same goroutine, once per display
frame, so no locking is needed. Other goroutines talk to the Model only by
sending messages through the Broker.
*/
package tracker
