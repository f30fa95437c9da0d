package logger

const SessionStartMsg = "session started, front end: %s, timestep: %s"
const SessionEndMsg = "session ended, final score %d:%d"

const ScoreMsg = "%s player scored, score %d:%d"
const PaddleHitMsg = "ball hit a paddle (%s zone)"
const WallBounceMsg = "ball bounced off the %s wall"

const ConfigReloadedMsg = "logger properties %s changed, level is now %s"

const QuitRequestedMsg = "quit requested"
const ShellErrorMsg = "front end stopped with error: %v"
