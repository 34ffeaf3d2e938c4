/*
Package arcfour implements the ARCFOUR (RC4) keystream generator with an
explicit, caller-owned State value.

Note that RC4 is a broken cipher by modern standards.
It remains here because the file format this module serves was defined around
it, and both ends of that format must produce bit-identical keystreams.
Do not reach for this package for new protocols.

# How it works:

KeySchedule folds the key into a 256-byte permutation. Generate and
XORKeyStream then walk the permutation, advancing two cursor positions that
live inside the State, so consecutive calls continue one keystream rather than
restarting it. There is no global state: each State belongs to exactly one
caller and one run.

# Important note:

Callers should Drop(256) once, immediately after KeySchedule, before using any
keystream byte. The first bytes of RC4 output leak key information under a
known-plaintext attack. Both the encrypting and decrypting side must perform
the same drop, or their keystreams fall out of step.
*/
package arcfour
