/* Package main implements an interpreter for Gibberish, a small stack-based
esoteric language whose programs are sequences of single-character commands
and bracketed string literals.

A Gibberish program operates on one global value stack shared by the whole
run, including any code it recursively evaluates via exec/while. Every
command is dispatched through one of four instruction sets: set 0 always has
priority and is consulted on every command before the currently active set,
which is how commands like 'n' (read-char in set 1, logical NOT in set 2,
is-number in set 3) can mean different things depending on what "mode" the
program has switched into with e/f/g/x.

The core pieces, leaves first:

  - Value: a tagged union of Number (float64) and String ([]byte).
  - Stack: a LIFO of Values addressed positionally from the top (swapn, copy,
    move) and, separately, from the bottom (invcopy, invmove), plus insert.
  - Program: the parsed, immutable sequence of Items (Constant or Command)
    that a parse pass produces from source text.
  - instructionSet: one of the four fixed command-character -> handler
    tables; set 0 is checked first on every dispatch.
  - Interpreter: holds a Program, an instruction pointer, the active set
    index, and a reference to the Host; step() executes one Item.
  - Host: owns the Stack and the process's I/O and quit signal for the
    lifetime of a run, and spawns child Interpreters for exec/while, which
    share its Stack by reference and inherit its active set at spawn time.

The Host is built up through functional construction options. Errors are
returned through every call site; in addition, a run executes in a recovered
goroutine, so a Go panic during a run is reported as an error as well.
*/
package main
