package game

const welcome = `Hello, minesweeper!

Your task is to defuse all the mines.
To reveal a tile, type the row and column - like "A1" or "28BC".
To mark a tile as a suspected mine, type "mark" with the position - like "mark A1".
To defuse a mine, type "def" with the position - like "def A1".
Type "help" to see every command.
`

const help = `Commands:
    <tile>          reveal a tile, e.g. "A1", "c14" or "5g"
    def <tile>      defuse a tile, or undo a defuse (also "d", "defuse")
    mark <tile>     mark a tile as suspected, or unmark it (also "m")
    hint            reveal one of the safest tiles
    restart [size]  start over, optionally with small, medium, large or xl
    stats           show your lifetime stats
    credits, about  who made this and what it is
    quit            leave the game (also "q", "exit")
Rows are letters (A, B, ... Z, AA, AB ...), columns are numbers starting at 1.
`

const credits = `Credits:
    Game design: the classic minesweeper
    Terminal version: the minesweeper-cli contributors
`

const about = `About:
    A line-by-line minesweeper for the terminal. Every tile is a mine with a
    20% chance, so no two boards hold the same number of mines. Reveal every
    safe tile to win; your first reveal never hits a mine.
`

const (
	bye         = "Bye!"
	noSafeTiles = "This board is all mines, there is nothing to reveal. You win by default!"
	roundOver   = `The round is over. Type "restart" to play again or "quit" to leave.`
	prompt      = "> "
)
